// SPDX-License-Identifier: MIT
// Package logratio: the labelled abundance table.

package logratio

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/matrix"
)

// Table is a labelled abundance matrix. Either axis may hold the features;
// Transform decides through Orientation.
//
// RowIDs and ColIDs are optional: a nil slice means "unlabelled", a non-nil
// slice must match the matching dimension of Data.
type Table struct {
	RowIDs []string
	ColIDs []string
	Data   *matrix.Dense
}

// NewTable builds a Table from literal rows and validates it.
// Errors: ErrInvalidInput (ragged/empty rows, label mismatch, negative or
// non-finite values).
func NewTable(rowIDs, colIDs []string, rows [][]float64) (*Table, error) {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, stageErrorf(stageValidate, ErrInvalidInput, err)
	}
	t := &Table{RowIDs: rowIDs, ColIDs: colIDs, Data: d}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the abundance-table invariants: non-nil data, labels that
// match the shape, and finite non-negative entries.
func (t *Table) Validate() error {
	if t == nil {
		return errors.Wrap(ErrInvalidInput, "nil table")
	}
	if err := matrix.ValidateNotNil(t.Data); err != nil {
		return stageErrorf(stageValidate, ErrInvalidInput, err)
	}
	r, c := t.Data.Shape()
	if r == 0 || c == 0 {
		return stageErrorf(stageValidate, ErrInvalidInput, matrix.ErrInvalidDimensions)
	}
	if t.RowIDs != nil && len(t.RowIDs) != r {
		return errors.Wrapf(ErrInvalidInput, "%d row labels for %d rows", len(t.RowIDs), r)
	}
	if t.ColIDs != nil && len(t.ColIDs) != c {
		return errors.Wrapf(ErrInvalidInput, "%d column labels for %d columns", len(t.ColIDs), c)
	}
	if err := matrix.ValidateNonNegative(t.Data); err != nil {
		return errors.WithHint(
			stageErrorf(stageValidate, ErrInvalidInput, err),
			"abundances must be finite and non-negative")
	}

	return nil
}

// Rows returns the row count of the underlying matrix.
func (t *Table) Rows() int { return t.Data.Rows() }

// Cols returns the column count of the underlying matrix.
func (t *Table) Cols() int { return t.Data.Cols() }

// Clone returns a deep copy; labels are copied too.
func (t *Table) Clone() *Table {
	return &Table{
		RowIDs: cloneIDs(t.RowIDs),
		ColIDs: cloneIDs(t.ColIDs),
		Data:   matrix.CloneMatrix(t.Data).(*matrix.Dense),
	}
}

// Transpose returns tᵀ with the labels swapped.
func (t *Table) Transpose() (*Table, error) {
	tr, err := matrix.Transpose(t.Data)
	if err != nil {
		return nil, err
	}

	return &Table{
		RowIDs: cloneIDs(t.ColIDs),
		ColIDs: cloneIDs(t.RowIDs),
		Data:   tr.(*matrix.Dense),
	}, nil
}

// withData returns a table sharing t's labels around a new matrix of the same shape.
func (t *Table) withData(d *matrix.Dense) *Table {
	return &Table{RowIDs: cloneIDs(t.RowIDs), ColIDs: cloneIDs(t.ColIDs), Data: d}
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}
