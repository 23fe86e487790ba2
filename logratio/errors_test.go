// SPDX-License-Identifier: MIT
package logratio_test

import (
	"errors"
	"testing"

	crdb "github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/logratio"
	"github.com/katalvlaran/coda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorKinds_StdlibIs checks that the error kind and the matrix cause are
// both visible to the standard library's errors.Is, not only to cockroachdb's.
func TestErrorKinds_StdlibIs(t *testing.T) {
	t.Parallel()

	zero, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {2, 3}})
	require.NoError(t, err)
	negative := &logratio.Table{Data: func() *matrix.Dense {
		d, err := matrix.NewDenseFromRows([][]float64{{1, -2}, {2, 3}, {4, 5}})
		require.NoError(t, err)
		return d
	}()}

	_, logErr := logratio.LogRatio(zero, []float64{1, 1}, logratio.BaseE)
	_, geoErr := logratio.GeoMean{}.Compute(zero)
	_, transformErr := logratio.Transform(negative)
	_, _, imputeErr := logratio.Impute(negative.Data, logratio.ImputeConfig{})

	tests := []struct {
		name  string
		err   error
		kind  error
		cause error
	}{
		{"logratio on zero", logErr, logratio.ErrZeroValue, matrix.ErrNonPositive},
		{"geomean on zero", geoErr, logratio.ErrZeroValue, matrix.ErrNonPositive},
		{"transform negative", transformErr, logratio.ErrInvalidInput, matrix.ErrNegative},
		{"impute negative", imputeErr, logratio.ErrInvalidInput, matrix.ErrNegative},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.True(t, errors.Is(tc.err, tc.kind), "kind")
			assert.True(t, errors.Is(tc.err, tc.cause), "cause")
			assert.True(t, crdb.Is(tc.err, tc.kind), "kind via cockroachdb")
			assert.True(t, crdb.Is(tc.err, tc.cause), "cause via cockroachdb")
			assert.Contains(t, tc.err.Error(), tc.kind.Error())
		})
	}

	assert.False(t, errors.Is(logErr, logratio.ErrInvalidInput))
	assert.Contains(t, crdb.GetAllHints(transformErr), "abundances must be finite and non-negative")
}

func TestIsErrorHelpers(t *testing.T) {
	t.Parallel()
	assert.False(t, logratio.IsConfigurationError(nil))
	assert.False(t, logratio.IsDegenerateInputError(nil))

	_, err := logratio.Transform(scenario(t), logratio.WithImpute(logratio.ImputeConfig{Method: logratio.ImputeAdditive}))
	assert.True(t, logratio.IsConfigurationError(err))

	_, _, err = logratio.RemoveEssentialZeros(mustTable(t, nil, nil, [][]float64{{0, 0}}))
	assert.True(t, logratio.IsDegenerateInputError(err))
}
