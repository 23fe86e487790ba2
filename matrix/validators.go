// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/length/sign checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; element scans run in fixed i→j order
//    and report the first offending cell.
//
// AI-Hints:
//  - Use ValidateNonNegative at ingestion of abundance data.
//  - Use ValidateStrictlyPositive right before any logarithm or geometric mean.

package matrix

import "github.com/cockroachdb/errors"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// cellErrorf wraps err with the validator tag and the offending coordinates.
func cellErrorf(tag string, i, j int, err error) error {
	return errors.Wrapf(err, "%s: (%d,%d)", tag, i, j)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (also for a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative – Requires every entry to be finite and ≥ 0.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegative.
// Complexity: O(r*c).
// AI-Hints: The abundance-table invariant; run once at the pipeline boundary.
func ValidateNonNegative(m Matrix) error {
	return scanCells(m, "ValidateNonNegative", func(v float64) error {
		if !isFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// ValidateStrictlyPositive – Requires every entry to be finite and > 0.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonPositive.
// Complexity: O(r*c).
// AI-Hints: Logarithms and geometric means are undefined otherwise.
func ValidateStrictlyPositive(m Matrix) error {
	return scanCells(m, "ValidateStrictlyPositive", func(v float64) error {
		if !isFinite(v) {
			return ErrNaNInf
		}
		if v <= 0 {
			return ErrNonPositive
		}
		return nil
	})
}

// scanCells runs check over every cell in i→j order and returns the first
// failure tagged with coordinates. Dense inputs scan the flat buffer.
func scanCells(m Matrix, tag string, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if err := check(d.data[base+j]); err != nil {
					return cellErrorf(tag, i, j, err)
				}
			}
		}
		return nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return cellErrorf(tag, i, j, err)
			}
		}
	}

	return nil
}
