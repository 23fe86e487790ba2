// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/coda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims=%v", dims)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Policy off: non-finite values are accepted verbatim.
	m, err = matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, _ = m.At(0, 0)
	assert.True(t, math.IsInf(v, 1))
}

func TestNewDenseFromRows_CopiesInput(t *testing.T) {
	t.Parallel()
	src := [][]float64{{1, 2}}
	m := FromRows(t, src)
	src[0][0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	require.NoError(t, m.Set(1, 1, 7))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 100))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_ColSetCol(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, col)

	col[0] = 42 // independent copy
	v, _ := m.At(0, 1)
	assert.Equal(t, 2.0, v)

	require.NoError(t, m.SetCol(0, []float64{7, 8, 9}))
	RequireRowsApprox(t, [][]float64{{7, 2}, {8, 4}, {9, 6}}, m)

	_, err = m.Col(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetCol(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(5, []float64{1, 2, 3}), matrix.ErrOutOfRange)

	// All-or-nothing: a NaN anywhere leaves the column untouched.
	require.ErrorIs(t, m.SetCol(0, []float64{1, math.NaN(), 3}), matrix.ErrNaNInf)
	col, _ = m.Col(0)
	assert.Equal(t, []float64{7, 8, 9}, col)
}

func TestDense_Induced(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.Induced([]int{2, 0}, []int{1, 2})
	require.NoError(t, err)
	RequireRowsApprox(t, [][]float64{{8, 9}, {2, 3}}, sub)

	empty, err := m.Induced(nil, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 3, empty.Cols())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SetPolicy(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	loose, err := matrix.NewDenseFromRows([][]float64{{1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
}

func TestDense_String(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2.5}, {0, 4}})
	assert.Equal(t, "[1, 2.5]\n[0, 4]\n", m.String())
}
