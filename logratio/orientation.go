// SPDX-License-Identifier: MIT
// Package logratio: orientation normalizer.
//
// The pipeline works on features × samples. orient flips a table into that
// layout before the first stage and Transform flips the result back, so the
// caller always gets the shape and labels it passed in.

package logratio

// needsTranspose applies the orientation rule to a rows×cols table.
func (o Orientation) needsTranspose(rows, cols int) bool {
	switch o {
	case OrientSamplesByRows:
		return true
	case OrientFeaturesByRows:
		return false
	default:
		return cols > rows
	}
}

// valid reports whether o is one of the declared constants.
func (o Orientation) valid() bool { return o <= OrientSamplesByRows }

// orient returns t in features × samples layout and whether it transposed.
// t itself is never modified.
func orient(t *Table, o Orientation) (*Table, bool, error) {
	if !o.needsTranspose(t.Rows(), t.Cols()) {
		return t, false, nil
	}
	tr, err := t.Transpose()
	if err != nil {
		return nil, false, stageErrorf(stageOrient, ErrInvalidInput, err)
	}

	return tr, true, nil
}
