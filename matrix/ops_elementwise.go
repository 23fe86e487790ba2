// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (column scaling, logratios).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); api.go exposes thin wrappers.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - Keep broadcast arrays (per-column scale/denominator) precomputed and reused.

package matrix

// ewMapCols computes out[i,j] = f(X[i,j], vec[j]) for a per-column broadcast vector.
// Shared engine for ewScaleCols and ewDivideCols.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewMapCols(tag string, X Matrix, vec []float64, f func(v, s float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(vec) != c {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = f(d.data[base+j], vec[j])
			}
		}
		return out, nil
	}

	// Generic fallback via At (still deterministic).
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*c+j] = f(v, vec[j])
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
//
// AI-Hint: multiplicative replacement rescales each sample's non-zero parts by one factor.
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	return ewMapCols(opScaleCols, X, scale, func(v, s float64) float64 { return v * s })
}

// ewDivideCols computes out[i,j] = X[i,j] / denom[j].
// Every denominator must be finite and strictly positive; otherwise ErrNonPositive
// (zero/negative) or ErrNaNInf is returned before any work is done.
// Time: O(r*c). Space: O(r*c).
func ewDivideCols(X Matrix, denom []float64) (*Dense, error) {
	for _, d := range denom {
		if !isFinite(d) {
			return nil, matrixErrorf(opDivideCols, ErrNaNInf)
		}
		if d <= 0 {
			return nil, matrixErrorf(opDivideCols, ErrNonPositive)
		}
	}

	return ewMapCols(opDivideCols, X, denom, func(v, s float64) float64 { return v / s })
}

// ewLog computes out[i,j] = logf(X[i,j]) after checking X is strictly positive.
// logf is math.Log, math.Log2 or math.Log10; the check guarantees no -Inf/NaN.
// Time: O(r*c). Space: O(r*c).
func ewLog(X Matrix, logf func(float64) float64) (*Dense, error) {
	if err := ValidateStrictlyPositive(X); err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for k, v := range d.data {
			out.data[k] = logf(v)
		}
		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = X.At(i, j) // bounds already proven by the positivity scan
			out.data[i*c+j] = logf(v)
		}
	}

	return out, nil
}
