// SPDX-License-Identifier: MIT
package logratio_test

import (
	"testing"

	"github.com/katalvlaran/coda/logratio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBase(t *testing.T) {
	t.Parallel()
	b, err := logratio.ParseBase("e")
	require.NoError(t, err)
	assert.Equal(t, logratio.BaseE, b)

	b, err = logratio.ParseBase(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, logratio.Base2, b)
	assert.Equal(t, "2", b.String())

	for _, s := range []string{"10", "E", "", "ln"} {
		_, err = logratio.ParseBase(s)
		require.ErrorIs(t, err, logratio.ErrInvalidBase, "input %q", s)
	}
}

func TestParseDenominatorMode(t *testing.T) {
	t.Parallel()
	m, err := logratio.ParseDenominatorMode("geomean")
	require.NoError(t, err)
	assert.Equal(t, logratio.DenomGeoMean, m)

	m, err = logratio.ParseDenominatorMode("DESeq2")
	require.NoError(t, err)
	assert.Equal(t, logratio.DenomDESeq2, m)
	assert.Equal(t, "DESeq2", m.String())

	for _, s := range []string{"deseq", "TMM", "", "mean"} {
		_, err = logratio.ParseDenominatorMode(s)
		require.ErrorIs(t, err, logratio.ErrInvalidMode, "input %q", s)
	}
}

func TestParseImputeMethod(t *testing.T) {
	t.Parallel()
	m, err := logratio.ParseImputeMethod("Additive")
	require.NoError(t, err)
	assert.Equal(t, logratio.ImputeAdditive, m)

	m, err = logratio.ParseImputeMethod("multiplicative")
	require.NoError(t, err)
	assert.Equal(t, logratio.ImputeMultiplicative, m)

	_, err = logratio.ParseImputeMethod("simple")
	require.ErrorIs(t, err, logratio.ErrConfiguration)
	assert.True(t, logratio.IsConfigurationError(err))
}

func TestParseOrientation(t *testing.T) {
	t.Parallel()
	tests := map[string]logratio.Orientation{
		"":         logratio.OrientAuto,
		"auto":     logratio.OrientAuto,
		"Features": logratio.OrientFeaturesByRows,
		"samples":  logratio.OrientSamplesByRows,
	}
	for in, want := range tests {
		got, err := logratio.ParseOrientation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logratio.ParseOrientation("columns")
	require.ErrorIs(t, err, logratio.ErrConfiguration)
}

func TestEnumStringsOfInvalidValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Base(7)", logratio.Base(7).String())
	assert.Equal(t, "DenominatorMode(9)", logratio.DenominatorMode(9).String())
	assert.Equal(t, "ImputeMethod(3)", logratio.ImputeMethod(3).String())
	assert.Equal(t, "Orientation(4)", logratio.Orientation(4).String())
}
