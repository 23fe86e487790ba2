// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Col/SetCol return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based row/column extraction (Induced, Col) for per-sample processing.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot kernels: operate on the flat data slice directly.
//   - Use Induced(rows, cols) to materialize a filtered submatrix (copy).
//   - Use Col/SetCol to run pure per-column maps (one column = one sample).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Col/SetCol: O(r); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxCol     = "Col"      // method tag used in error wrappers
	ctxSetCol  = "SetCol"   // method tag used in error wrappers
	ctxInduce  = "Induced"  // ctor/tag for Dense.Induced
	ctxFromRow = "FromRows" // ctor/tag for NewDenseFromRows
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/SetCol.
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for internal zero-OK constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer NewDenseFromRows when the values are already at hand.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new *Dense.
// MAIN DESCRIPTION:
//   - Ingestion constructor: values[i][j] becomes element (i,j).
//
// Implementation:
//   - Stage 1: resolve options; validate non-empty and rectangular input.
//   - Stage 2: copy row by row, enforcing the NaN/Inf policy on every value.
//
// Inputs:
//   - values: at least one row, each row with the same positive length.
//   - opts  : numeric policy (WithNoValidateNaNInf to accept non-finite values).
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty rows), ErrRaggedRows, ErrNaNInf.
//
// Determinism:
//   - Fixed i→j copy order; the first offending cell is reported.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(values [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, ctxFromRow)
	}
	rows, cols := len(values), len(values[0])
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, ctxFromRow)
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	for i = 0; i < rows; i++ {
		if len(values[i]) != cols {
			return nil, errors.Wrapf(ErrRaggedRows, "%s: row %d has %d values, want %d", ctxFromRow, i, len(values[i]), cols)
		}
		for j = 0; j < cols; j++ {
			if m.validateNaNInf && !isFinite(values[i][j]) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], values[i])
	}

	return m, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used by Induced to produce legal 0×k or k×0 results.
// Complexity: O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the guard is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed Clone used by kernels that need *Dense back.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Col returns a copy of column j (length Rows()).
// MAIN DESCRIPTION:
//   - Gather a strided column out of the row-major buffer into a fresh slice.
//
// Behavior highlights:
//   - The returned slice is independent; mutating it does not touch m.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()).
//
// Complexity:
//   - Time O(r), Space O(r).
//
// AI-Hints:
//   - Pair with SetCol to run a pure per-column transform: v := m.Col(j); f(v); m.SetCol(j, v).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol scatters v into column j, honoring the numeric policy.
// MAIN DESCRIPTION:
//   - All-or-nothing column write: the policy is checked before any store.
//
// Errors:
//   - ErrOutOfRange (bad j), ErrDimensionMismatch (len(v) != Rows()), ErrNaNInf.
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) SetCol(j int, v []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetCol, len(v), j, ErrDimensionMismatch)
	}
	var i int
	if m.validateNaNInf {
		for i = 0; i < m.r; i++ {
			if !isFinite(v[i]) {
				return denseErrorf(ctxSetCol, i, j, ErrNaNInf)
			}
		}
	}
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: allocate result via newDenseZeroOK (zero-area is legal).
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// AI-Hints:
//   - Filtering rows while keeping every column: m.Induced(keep, seq(m.Cols())).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := newDenseZeroOK(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, errors.Wrapf(ErrOutOfRange, "Dense.%s: row index %d", ctxInduce, ri)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, errors.Wrapf(ErrOutOfRange, "Dense.%s: col index %d", ctxInduce, cj)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
