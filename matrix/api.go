// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the kernels in this package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - The logratio pipeline runs: ColZeroCounts/ColMinPositive/ColSums →
//     ScaleCols (multiplicative rescale) → ColGeoMeans → DivideCols → Log.

package matrix

import "math"

// ---------- Utilities ----------

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ---------- Column-broadcast kernels ----------

// ScaleCols returns out[i,j] = m[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols()).
// Complexity: O(rc).
func ScaleCols(m Matrix, scale []float64) (*Dense, error) { return ewScaleCols(m, scale) }

// DivideCols returns out[i,j] = m[i,j] / denom[j].
// Every denominator must be finite and > 0 (ErrNaNInf / ErrNonPositive otherwise).
// Complexity: O(rc).
//
// AI-Hints: the centering step of a logratio: divide by per-sample denominators.
func DivideCols(m Matrix, denom []float64) (*Dense, error) { return ewDivideCols(m, denom) }

// Log returns the natural logarithm of every entry; m must be strictly positive.
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonPositive.
// Complexity: O(rc).
func Log(m Matrix) (*Dense, error) { return ewLog(m, math.Log) }

// Log2 returns the base-2 logarithm of every entry; m must be strictly positive.
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonPositive.
// Complexity: O(rc).
func Log2(m Matrix) (*Dense, error) { return ewLog(m, math.Log2) }

// ---------- Reductions (public surface → internal implementations) ----------

// ColSums returns vector s where s[j] = Σ_i m[i,j].
// Complexity: O(rc).
//
// AI-Hints: the per-sample library size / total mass of a composition.
func ColSums(m Matrix) ([]float64, error) { return colSums(m) }

// ColZeroCounts returns the number of exact zeros in every column.
// Complexity: O(rc).
func ColZeroCounts(m Matrix) ([]int, error) { return colZeroCounts(m) }

// ColMinPositive returns the smallest positive entry of every column and a
// flag telling whether the column had any positive entry at all.
// Complexity: O(rc).
func ColMinPositive(m Matrix) ([]float64, []bool, error) { return colMinPositive(m) }

// ColGeoMeans returns the geometric mean of every column (strictly positive input).
// Complexity: O(rc).
func ColGeoMeans(m Matrix) ([]float64, error) { return colGeoMeans(m) }

// RowGeoMeans returns the geometric mean of every row (strictly positive input).
// Complexity: O(rc).
func RowGeoMeans(m Matrix) ([]float64, error) { return rowGeoMeans(m) }

// RowAllZero flags rows whose every entry is exactly zero.
// Complexity: O(rc) worst case.
func RowAllZero(m Matrix) ([]bool, error) { return rowAllZero(m) }
