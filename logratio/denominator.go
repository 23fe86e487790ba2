// SPDX-License-Identifier: MIT
// Package logratio: denominator calculator.
//
// A Denominator turns a strictly positive features × samples matrix into one
// positive normalizing value per sample. The logratio core divides each sample
// by its value before taking logs.
//
// Built-ins:
//   - GeoMean:    exp(mean_i log x_ij)                      → CLR
//   - SizeFactor: median_i (x_ij / g_i), g_i = row geomean  → DESeq2 median of ratios
//   - Reference:  geometric mean of caller-chosen rows      → ALR (one row) or a
//                 geometric mean of a reference set

package logratio

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/matrix"
)

// Denominator computes one positive normalizing value per sample (column).
// Implementations must not modify m and must be safe for concurrent use.
type Denominator interface {
	Compute(m *matrix.Dense) ([]float64, error)
}

// Compile-time conformance.
var (
	_ Denominator = GeoMean{}
	_ Denominator = SizeFactor{}
	_ Denominator = Reference{}
)

// Denominator returns the built-in implementation for d, or ErrInvalidMode.
func (d DenominatorMode) Denominator() (Denominator, error) {
	switch d {
	case DenomGeoMean:
		return GeoMean{}, nil
	case DenomDESeq2:
		return SizeFactor{}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidMode, "mode %s", d)
	}
}

// GeoMean is the per-sample geometric mean.
type GeoMean struct{}

// Compute returns exp(mean_i log m[i,j]) for every column.
// Errors: ErrZeroValue when a column holds a zero.
func (GeoMean) Compute(m *matrix.Dense) ([]float64, error) {
	g, err := matrix.ColGeoMeans(m)
	if err != nil {
		return nil, positivityError(err)
	}

	return g, nil
}

// SizeFactor is the DESeq2 median-of-ratios size factor.
//
// Features holding a zero in any sample have a zero geometric mean and are
// skipped, as DESeq2 does; after imputation every feature takes part.
type SizeFactor struct{}

// Compute returns s_j = median over usable features i of m[i,j] / g_i.
// MAIN DESCRIPTION:
//   - g_i: geometric mean of feature i across samples (the pseudo-reference).
//   - Even feature counts average the two middle ratios.
//
// Errors:
//   - ErrDegenerateInput when no feature is positive in every sample.
//   - ErrInvalidInput for negative or non-finite entries.
//
// Complexity:
//   - Time O(c · r log r), Space O(r).
func (SizeFactor) Compute(m *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, stageErrorf(stageDenominator, ErrInvalidInput, err)
	}
	r, c := m.Shape()

	usable := make([]int, 0, r)
	for i := 0; i < r; i++ {
		positive := true
		for j := 0; j < c && positive; j++ {
			v, _ := m.At(i, j)
			positive = v > 0
		}
		if positive {
			usable = append(usable, i)
		}
	}
	if len(usable) == 0 {
		return nil, errors.Wrapf(ErrDegenerateInput, "%s: no feature is positive in every sample", stageDenominator)
	}

	all := make([]int, c)
	for j := range all {
		all[j] = j
	}
	sub, err := m.Induced(usable, all)
	if err != nil {
		return nil, stageErrorf(stageDenominator, ErrInvalidInput, err)
	}
	ref, err := matrix.RowGeoMeans(sub)
	if err != nil {
		return nil, positivityError(err)
	}

	out := make([]float64, c)
	ratios := make([]float64, len(usable))
	for j := 0; j < c; j++ {
		for k := range usable {
			v, _ := sub.At(k, j)
			ratios[k] = v / ref[k]
		}
		if out[j], err = matrix.Median(ratios); err != nil {
			return nil, stageErrorf(stageDenominator, ErrInvalidInput, err)
		}
	}

	return out, nil
}

// Reference is the geometric mean of a fixed set of reference features.
// With a single row this yields the additive logratio (ALR) against it.
// Choosing the rows is the caller's business.
type Reference struct {
	Rows []int
}

// Compute returns the per-sample geometric mean over the reference rows.
// Errors: ErrConfiguration (no rows, index out of range), ErrZeroValue.
func (ref Reference) Compute(m *matrix.Dense) ([]float64, error) {
	if len(ref.Rows) == 0 {
		return nil, errors.Wrapf(ErrConfiguration, "%s: empty reference set", stageDenominator)
	}
	all := make([]int, m.Cols())
	for j := range all {
		all[j] = j
	}
	sub, err := m.Induced(ref.Rows, all)
	if err != nil {
		return nil, stageErrorf(stageDenominator, ErrConfiguration, err)
	}
	g, err := matrix.ColGeoMeans(sub)
	if err != nil {
		return nil, positivityError(err)
	}

	return g, nil
}

// positivityError classifies a matrix positivity failure: zeros become
// ErrZeroValue, anything else ErrInvalidInput.
func positivityError(err error) error {
	if errors.Is(err, matrix.ErrNonPositive) {
		return stageErrorf(stageDenominator, ErrZeroValue, err)
	}

	return stageErrorf(stageDenominator, ErrInvalidInput, err)
}
