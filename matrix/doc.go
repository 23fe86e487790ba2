// SPDX-License-Identifier: MIT

// Package matrix offers a row-major dense matrix and the numeric kernels a
// compositional-data pipeline is built from.
//
// The matrix package provides:
//
//   - Dense: a flat, row-major float64 matrix with bounds-checked accessors,
//     an optional finite-only numeric policy, column gather/scatter (Col,
//     SetCol) and row/column induction (Induced).
//   - Reshaping and scaling kernels: Transpose, ScaleCols, DivideCols.
//   - Logarithms over strictly positive matrices: Log, Log2.
//   - Reductions: ColSums, ColZeroCounts, ColMinPositive, ColGeoMeans,
//     RowGeoMeans, RowAllZero, plus the vector Median.
//   - Central validators (ValidateNonNegative, ValidateStrictlyPositive, ...)
//     returning package sentinels that callers match with errors.Is.
//
// Every kernel allocates a fresh result and never mutates its inputs, so the
// package is safe to use from independent goroutines without locking.
//
// See the examples in this package and in logratio for usage patterns.
package matrix
