// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/coda/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidatePolicy_LastWriterWins checks options apply in order and nil is skipped.
func TestValidatePolicy_LastWriterWins(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{math.NaN()}}

	_, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFromRows(rows, nil, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	// Policy is inherited by kernels and clones.
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, math.Inf(1)))
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.NoError(t, tr.Set(0, 0, math.Inf(-1)))
}
