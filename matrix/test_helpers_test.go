// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (count tables) and utilities for kernels.
//   • Offer a type-hiding wrapper so every kernel's fallback path is exercised.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/coda/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute/relative tolerance used by float comparisons in this package.
const tol = 1e-12

// approx compares float slices element-wise within tol.
var approx = cmpopts.EquateApprox(tol, tol)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths; the result
// must equal the *Dense fast path bit for bit.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// ToRows dumps m into [][]float64 for cmp-based assertions.
func ToRows(tb testing.TB, m matrix.Matrix) [][]float64 {
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

// RequireRowsApprox asserts m equals want within tol, reporting a cmp diff.
func RequireRowsApprox(tb testing.TB, want [][]float64, m matrix.Matrix) {
	tb.Helper()
	if diff := cmp.Diff(want, ToRows(tb, m), approx); diff != "" {
		tb.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// fillCounts fills m with deterministic non-negative counts, roughly a
// quarter of them zero, like a sparse sequencing table.
func fillCounts(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := 0.0
			if rng.Intn(4) != 0 {
				v = float64(1 + rng.Intn(1000))
			}
			require.NoError(tb, m.Set(i, j, v))
		}
	}
}

// fillPositive fills m with deterministic values in [1, 1000].
func fillPositive(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, 1+rng.Float64()*999))
		}
	}
}
