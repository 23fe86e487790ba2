// SPDX-License-Identifier: MIT
package logratio_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/coda/logratio"
	"github.com/katalvlaran/coda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireVecApprox(t *testing.T, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestGeoMean_Compute(t *testing.T) {
	t.Parallel()
	g, err := logratio.GeoMean{}.Compute(dense(t, [][]float64{{1, 2}, {4, 8}, {16, 0.5}}))
	require.NoError(t, err)
	requireVecApprox(t, []float64{4, 2}, g)

	_, err = logratio.GeoMean{}.Compute(dense(t, [][]float64{{1, 0}}))
	require.ErrorIs(t, err, logratio.ErrZeroValue)
}

// TestSizeFactor_Compute: pseudo-reference g = [2, 3, 3, 4]; sample ratios
// [0.5, 1, 3, 0.5] and [2, 1, 1/3, 2] give medians 0.75 and 1.5.
func TestSizeFactor_Compute(t *testing.T) {
	t.Parallel()
	m := dense(t, [][]float64{{1, 4}, {3, 3}, {9, 1}, {2, 8}})
	s, err := logratio.SizeFactor{}.Compute(m)
	require.NoError(t, err)
	requireVecApprox(t, []float64{0.75, 1.5}, s)
}

func TestSizeFactor_SkipsFeaturesWithZeros(t *testing.T) {
	t.Parallel()
	withZero := dense(t, [][]float64{{1, 4}, {0, 50}, {3, 3}, {9, 1}, {2, 8}})
	s, err := logratio.SizeFactor{}.Compute(withZero)
	require.NoError(t, err)
	requireVecApprox(t, []float64{0.75, 1.5}, s)

	_, err = logratio.SizeFactor{}.Compute(dense(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, logratio.ErrDegenerateInput)
}

// TestSizeFactor_OddFeatures uses the middle ratio directly.
func TestSizeFactor_OddFeatures(t *testing.T) {
	t.Parallel()
	s, err := logratio.SizeFactor{}.Compute(dense(t, [][]float64{{1, 4}, {3, 3}, {9, 1}}))
	require.NoError(t, err)
	requireVecApprox(t, []float64{1, 1}, s)
}

func TestReference_Compute(t *testing.T) {
	t.Parallel()
	m := dense(t, [][]float64{{2, 8}, {3, 5}, {8, 2}})

	d, err := logratio.Reference{Rows: []int{0}}.Compute(m)
	require.NoError(t, err)
	requireVecApprox(t, []float64{2, 8}, d)

	d, err = logratio.Reference{Rows: []int{0, 2}}.Compute(m)
	require.NoError(t, err)
	requireVecApprox(t, []float64{4, 4}, d)

	_, err = logratio.Reference{}.Compute(m)
	require.ErrorIs(t, err, logratio.ErrConfiguration)
	_, err = logratio.Reference{Rows: []int{3}}.Compute(m)
	require.ErrorIs(t, err, logratio.ErrConfiguration)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDenominatorMode_Denominator(t *testing.T) {
	t.Parallel()
	d, err := logratio.DenomGeoMean.Denominator()
	require.NoError(t, err)
	assert.IsType(t, logratio.GeoMean{}, d)

	d, err = logratio.DenomDESeq2.Denominator()
	require.NoError(t, err)
	assert.IsType(t, logratio.SizeFactor{}, d)

	_, err = logratio.DenominatorMode(42).Denominator()
	require.ErrorIs(t, err, logratio.ErrInvalidMode)
}

func TestLogRatio(t *testing.T) {
	t.Parallel()
	m := dense(t, [][]float64{{2, 1}, {8, 4}})

	out, err := logratio.LogRatio(m, []float64{4, 2}, logratio.Base2)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{-1, -1}, {1, 1}}, out)

	out, err = logratio.LogRatio(m, []float64{2, 1}, logratio.BaseE)
	require.NoError(t, err)
	requireApprox(t, [][]float64{{0, 0}, {math.Log(4), math.Log(4)}}, out)
}

func TestLogRatio_Errors(t *testing.T) {
	t.Parallel()
	withZero := dense(t, [][]float64{{2, 0}})
	_, err := logratio.LogRatio(withZero, []float64{1, 1}, logratio.BaseE)
	require.ErrorIs(t, err, logratio.ErrZeroValue)
	require.ErrorIs(t, err, matrix.ErrNonPositive)

	m := dense(t, [][]float64{{2, 3}})
	for _, denom := range [][]float64{{0, 1}, {1, -1}, {math.Inf(1), 1}} {
		_, err = logratio.LogRatio(m, denom, logratio.BaseE)
		require.ErrorIs(t, err, logratio.ErrZeroValue, "denom %v", denom)
	}

	_, err = logratio.LogRatio(m, []float64{1}, logratio.BaseE)
	require.ErrorIs(t, err, logratio.ErrInvalidInput)

	_, err = logratio.LogRatio(m, []float64{1, 1}, logratio.Base(3))
	require.ErrorIs(t, err, logratio.ErrInvalidBase)

	neg, err := matrix.NewDenseFromRows([][]float64{{-2, 3}})
	require.NoError(t, err)
	_, err = logratio.LogRatio(neg, []float64{1, 1}, logratio.BaseE)
	require.ErrorIs(t, err, logratio.ErrInvalidInput)
}
