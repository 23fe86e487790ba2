// SPDX-License-Identifier: MIT
// Package logratio: essential-zero filter.
//
// An essential zero is a feature absent from every sample. Such rows carry
// no compositional information and are dropped before imputation when
// requested; rows with only some zeros (rounded zeros) are always kept.

package logratio

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/matrix"
)

// IsEssentialZero reports whether every value of a feature row is zero.
// An empty row is not essential.
func IsEssentialZero(row []float64) bool {
	if len(row) == 0 {
		return false
	}
	for _, v := range row {
		if v != 0 {
			return false
		}
	}

	return true
}

// RemoveEssentialZeros drops every all-zero row of a features × samples table.
// MAIN DESCRIPTION:
//   - Keeps row order and labels of the surviving rows.
//
// Returns:
//   - the filtered table (always a fresh copy),
//   - the indices of the dropped rows, ascending.
//
// Errors:
//   - ErrDegenerateInput when every row is an essential zero.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RemoveEssentialZeros(t *Table) (*Table, []int, error) {
	flags, err := matrix.RowAllZero(t.Data)
	if err != nil {
		return nil, nil, stageErrorf(stageEssential, ErrInvalidInput, err)
	}

	keep := make([]int, 0, len(flags))
	var dropped []int
	for i, zero := range flags {
		if zero {
			dropped = append(dropped, i)
			continue
		}
		keep = append(keep, i)
	}
	if len(keep) == 0 {
		return nil, dropped, errors.WithHint(
			errors.Wrapf(ErrDegenerateInput, "%s: all %d features are zero in every sample", stageEssential, len(flags)),
			"check the orientation of the table")
	}

	cols := make([]int, t.Cols())
	for j := range cols {
		cols[j] = j
	}
	sub, err := t.Data.Induced(keep, cols)
	if err != nil {
		return nil, nil, stageErrorf(stageEssential, ErrInvalidInput, err)
	}

	out := &Table{ColIDs: cloneIDs(t.ColIDs), Data: sub}
	if t.RowIDs != nil {
		out.RowIDs = make([]string, len(keep))
		for k, i := range keep {
			out.RowIDs[k] = t.RowIDs[i]
		}
	}

	return out, dropped, nil
}
