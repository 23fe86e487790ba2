// SPDX-License-Identifier: MIT
package logratio_test

import (
	"testing"

	"github.com/katalvlaran/coda/logratio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEssentialZero(t *testing.T) {
	t.Parallel()
	assert.True(t, logratio.IsEssentialZero([]float64{0, 0, 0}))
	assert.False(t, logratio.IsEssentialZero([]float64{0, 1e-300, 0}))
	assert.False(t, logratio.IsEssentialZero(nil))
}

// TestRemoveEssentialZeros drops exactly the all-zero rows of [[0,0],[1,2],[0,3]].
func TestRemoveEssentialZeros(t *testing.T) {
	t.Parallel()
	in := mustTable(t, []string{"a", "b", "c"}, []string{"s1", "s2"},
		[][]float64{{0, 0}, {1, 2}, {0, 3}})

	out, dropped, err := logratio.RemoveEssentialZeros(in)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, dropped)
	assert.Equal(t, []string{"b", "c"}, out.RowIDs)
	assert.Equal(t, []string{"s1", "s2"}, out.ColIDs)
	requireApprox(t, [][]float64{{1, 2}, {0, 3}}, out.Data)

	// Input untouched.
	assert.Equal(t, 3, in.Rows())
}

func TestRemoveEssentialZeros_KeepsRoundedZeros(t *testing.T) {
	t.Parallel()
	in := mustTable(t, nil, nil, [][]float64{{0, 1}, {2, 0}})
	out, dropped, err := logratio.RemoveEssentialZeros(in)
	require.NoError(t, err)
	assert.Empty(t, dropped)
	assert.Nil(t, out.RowIDs)
	requireApprox(t, [][]float64{{0, 1}, {2, 0}}, out.Data)
}

func TestRemoveEssentialZeros_AllZero(t *testing.T) {
	t.Parallel()
	in := mustTable(t, nil, nil, [][]float64{{0, 0}, {0, 0}})
	_, dropped, err := logratio.RemoveEssentialZeros(in)
	require.ErrorIs(t, err, logratio.ErrDegenerateInput)
	assert.True(t, logratio.IsDegenerateInputError(err))
	assert.Equal(t, []int{0, 1}, dropped)
}
