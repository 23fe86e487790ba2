// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally tagged through
// matrixErrorf) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels tag sentinels with an operation name via
// matrixErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf -> sign/positivity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Col/SetCol) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a broadcast vector whose length differs from Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that row slices handed to a constructor differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, SetCol).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where a non-negative matrix is required.
	ErrNegative = errors.New("matrix: negative value encountered")

	// ErrNonPositive signals a zero or negative entry where strictly positive
	// values are required (logarithms, geometric means).
	ErrNonPositive = errors.New("matrix: non-positive value encountered")

	// ErrEmpty signals a reduction over an empty vector (no defined result).
	ErrEmpty = errors.New("matrix: empty input")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
