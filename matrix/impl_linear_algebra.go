// SPDX-License-Identifier: MIT
// Package matrix provides universal reshaping and scaling kernels on any
// Matrix implementation. All functions perform strict fail-fast validation
// and return clear errors on nil inputs or dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels (Transpose) used by the logratio pipeline
//     to flip orientation.
//   - Define operation tags shared by every file for uniform error reporting.
//
// Notes:
//   - Kernels use central validators and wrap failures via matrixErrorf.

package matrix

import "github.com/cockroachdb/errors"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose   = "Transpose"
	opScaleCols   = "ScaleCols"
	opDivideCols  = "DivideCols"
	opLog         = "Log"
	opColSums     = "ColSums"
	opColMinPos   = "ColMinPositive"
	opColZeros    = "ColZeroCounts"
	opColGeoMeans = "ColGeoMeans"
	opRowGeoMeans = "RowGeoMeans"
	opRowAllZero  = "RowAllZero"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// for errors.Is/errors.As. The message shape is "<tag>: <underlying>".
//
// Notes:
//   - Use only when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// Transpose returns a new matrix that is the transpose of m (mᵀ).
// MAIN DESCRIPTION:
//   - Materialize mᵀ with dims (Cols × Rows); the input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows) keeping m's numeric policy.
//   - Stage 2: Dense fast-path scatters data[i*c+j] → res.data[j*r+i];
//     otherwise generic At/Set loop.
//
// Errors:
//   - ErrNilMatrix (validation), wrapped At/Set errors from the fallback.
//
// Determinism:
//   - Fixed i→j traversal.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Transpose(Transpose(m)) is bitwise equal to m; orientation round-trips are exact.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}
