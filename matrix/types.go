// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface every kernel accepts.
package matrix

// Matrix is the minimal surface a kernel needs from an abundance table:
// its shape, bounds-checked element access and a deep copy.
//
// *Dense is the only implementation in this module. Kernels detect it and
// walk its flat buffer directly; any other implementation goes through At/Set.
type Matrix interface {
	// Rows is the first dimension (features, once orientation is settled).
	Rows() int

	// Cols is the second dimension (samples).
	Cols() int

	// At reads entry (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes entry (i, j); ErrOutOfRange outside the shape, ErrNaNInf
	// for a non-finite v when the finite-only policy is on.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy. O(rows*cols).
	Clone() Matrix
}
