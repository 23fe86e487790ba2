// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-row / per-column reductions a compositional pipeline needs
//     (sums, minimum positive value, zero counts, geometric means, all-zero rows)
//     plus the vector Median used by the size-factor denominator.
//   - Keep tight loops centralized here; higher layers only compose.
//
// Exposed API (via api.go):
//   - ColSums(X)        -> sums       // Σ_i X[i,j]
//   - ColMinPositive(X) -> mins, ok   // min{X[i,j] > 0}; ok[j]=false when column has no positive value
//   - ColZeroCounts(X)  -> counts     // #{i : X[i,j] == 0}
//   - ColGeoMeans(X)    -> g          // exp(mean_i log X[i,j]); strictly positive input
//   - RowGeoMeans(X)    -> g          // exp(mean_j log X[i,j]); strictly positive input
//   - RowAllZero(X)     -> flags      // true where every entry of the row is 0
//   - Median(v)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; Dense fast-paths read the flat buffer.
//   - Geometric means are accumulated in log space (no product overflow).
//
// AI-Hints:
//   - ColGeoMeans is the CLR denominator; RowGeoMeans is the DESeq2 pseudo-reference.

package matrix

import (
	"math"
	"slices"
)

// Vector-statistic tags (matrix-level tags live in impl_linear_algebra.go).
const (
	opMedian = "Median"
)

// medianHalf is the divisor used to average the two middle order statistics.
const medianHalf = 2.0

// reduceCols folds every column of X with step(acc, v) starting from init.
// Shared engine for column reductions; Dense fast path walks the flat buffer row by row.
// Time: O(r*c). Space: O(c).
func reduceCols(tag string, X Matrix, init float64, step func(acc, v float64) float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	acc := make([]float64, c)
	for j := range acc {
		acc[j] = init
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				acc[j] = step(acc[j], d.data[base+j])
			}
		}
		return acc, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			acc[j] = step(acc[j], v)
		}
	}

	return acc, nil
}

// colSums returns s[j] = Σ_i X[i,j].
// Complexity: Time O(r*c), Space O(c).
func colSums(X Matrix) ([]float64, error) {
	return reduceCols(opColSums, X, 0, func(acc, v float64) float64 { return acc + v })
}

// colZeroCounts returns n[j] = #{i : X[i,j] == 0}.
// Complexity: Time O(r*c), Space O(c).
func colZeroCounts(X Matrix) ([]int, error) {
	counts, err := reduceCols(opColZeros, X, 0, func(acc, v float64) float64 {
		if v == 0 {
			return acc + 1
		}
		return acc
	})
	if err != nil {
		return nil, err
	}
	out := make([]int, len(counts))
	for j, n := range counts {
		out[j] = int(n)
	}

	return out, nil
}

// colMinPositive returns the smallest strictly positive entry of every column.
// MAIN DESCRIPTION:
//   - The per-sample detection limit: min over non-zero values.
//
// Returns:
//   - mins[j]: the minimum positive value, or 0 when ok[j] is false.
//   - ok[j]  : false when column j has no positive entry (all zeros).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colMinPositive(X Matrix) ([]float64, []bool, error) {
	inf := math.Inf(1)
	mins, err := reduceCols(opColMinPos, X, inf, func(acc, v float64) float64 {
		if v > 0 && v < acc {
			return v
		}
		return acc
	})
	if err != nil {
		return nil, nil, err
	}
	ok := make([]bool, len(mins))
	for j, v := range mins {
		if v == inf {
			mins[j] = 0
			continue
		}
		ok[j] = true
	}

	return mins, ok, nil
}

// colGeoMeans returns g[j] = exp(mean_i log X[i,j]).
// MAIN DESCRIPTION:
//   - Column-wise geometric mean accumulated in log space.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNonPositive (from ValidateStrictlyPositive).
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// AI-Hints:
//   - Scaling a column by c>0 scales its geometric mean by exactly c.
func colGeoMeans(X Matrix) ([]float64, error) {
	if err := ValidateStrictlyPositive(X); err != nil {
		return nil, matrixErrorf(opColGeoMeans, err)
	}
	if X.Rows() == 0 {
		return nil, matrixErrorf(opColGeoMeans, ErrEmpty)
	}
	logSums, err := reduceCols(opColGeoMeans, X, 0, func(acc, v float64) float64 { return acc + math.Log(v) })
	if err != nil {
		return nil, err
	}
	invR := 1.0 / float64(X.Rows())
	for j := range logSums {
		logSums[j] = math.Exp(logSums[j] * invR)
	}

	return logSums, nil
}

// rowGeoMeans returns g[i] = exp(mean_j log X[i,j]).
// Errors and complexity mirror colGeoMeans.
func rowGeoMeans(X Matrix) ([]float64, error) {
	if err := ValidateStrictlyPositive(X); err != nil {
		return nil, matrixErrorf(opRowGeoMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, matrixErrorf(opRowGeoMeans, ErrEmpty)
	}
	out := make([]float64, r)
	invC := 1.0 / float64(c)

	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0
			base := i * c
			for j = 0; j < c; j++ {
				s += math.Log(d.data[base+j])
			}
			out[i] = math.Exp(s * invC)
		}
		return out, nil
	}

	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			v, _ = X.At(i, j) // bounds proven by the positivity scan
			s += math.Log(v)
		}
		out[i] = math.Exp(s * invC)
	}

	return out, nil
}

// rowAllZero flags rows whose every entry equals 0.
// Complexity: Time O(r*c) worst case, early exit per row on the first non-zero.
func rowAllZero(X Matrix) ([]bool, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowAllZero, err)
	}
	r, c := X.Rows(), X.Cols()
	flags := make([]bool, r)

	var i, j int
	var v float64
	var err error
	d, dense := X.(*Dense)
	for i = 0; i < r; i++ {
		flags[i] = true
		for j = 0; j < c; j++ {
			if dense {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowAllZero, err)
			}
			if v != 0 {
				flags[i] = false
				break
			}
		}
	}

	return flags, nil
}

// Median returns the sample median of v without mutating it.
// Even lengths average the two middle order statistics.
//
// Errors:
//   - ErrEmpty (len(v)==0), ErrNaNInf (NaN has no order).
//
// Complexity: Time O(n log n), Space O(n) for the sorted copy.
func Median(v []float64) (float64, error) {
	n := len(v)
	if n == 0 {
		return 0, matrixErrorf(opMedian, ErrEmpty)
	}
	s := slices.Clone(v)
	for _, x := range s {
		if math.IsNaN(x) {
			return 0, matrixErrorf(opMedian, ErrNaNInf)
		}
	}
	slices.Sort(s)
	if n%2 == 1 {
		return s[n/2], nil
	}

	return (s[n/2-1] + s[n/2]) / medianHalf, nil
}
