// SPDX-License-Identifier: MIT
// Package logratio_test contains shared fixtures for the pipeline tests.
package logratio_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/coda/logratio"
	"github.com/katalvlaran/coda/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

var approx = cmpopts.EquateApprox(0, tol)

// mustTable builds a validated table or fails the test.
func mustTable(tb testing.TB, rowIDs, colIDs []string, rows [][]float64) *logratio.Table {
	tb.Helper()
	t, err := logratio.NewTable(rowIDs, colIDs, rows)
	require.NoError(tb, err)

	return t
}

// rowsOf dumps m into [][]float64.
func rowsOf(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}

// requireApprox asserts m equals want within tol with a cmp diff on failure.
func requireApprox(tb testing.TB, want [][]float64, m matrix.Matrix) {
	tb.Helper()
	if diff := cmp.Diff(want, rowsOf(tb, m), approx); diff != "" {
		tb.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

// countTable returns a features×samples table of sparse counts whose first
// feature is positive everywhere, so no sample is all zero.
func countTable(tb testing.TB, features, samples int, seed int64) *logratio.Table {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, features)
	for i := range rows {
		rows[i] = make([]float64, samples)
		for j := range rows[i] {
			if i == 0 || rng.Intn(3) != 0 {
				rows[i][j] = float64(1 + rng.Intn(500))
			}
		}
	}

	return mustTable(tb, nil, nil, rows)
}

// scenario is the 3 features × 2 samples table used across tests:
// sample s1 = [4,2,0], sample s2 = [0,2,2].
func scenario(tb testing.TB) *logratio.Table {
	tb.Helper()
	return mustTable(tb,
		[]string{"f1", "f2", "f3"},
		[]string{"s1", "s2"},
		[][]float64{{4, 0}, {2, 2}, {0, 2}},
	)
}
