// SPDX-License-Identifier: MIT
// Package logratio: zero imputation engine.
//
// Purpose:
//   - Replace rounded zeros with a small positive delta so every value can be
//     logged, while keeping the compositional meaning of each sample.
//
// Strategies (per sample / column, pure maps over a column slice):
//   - Multiplicative: zeros → δ; non-zero x → x·(1 − k·δ/S), where k is the
//     number of zeros and S the sample's sum constraint. The sample total is
//     preserved exactly when S equals the column sum.
//   - Additive: zeros → δ; non-zero values are left unchanged. δ must be given.
//
// Delta resolution (first match wins):
//   SampleDeltas[j] → Delta → Proportion × min{non-zero values of sample j}.
//
// Sum resolution for the multiplicative strategy (first match wins):
//   SampleSums[j] → SumConstraint → column sum before imputation.

package logratio

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/matrix"
)

// DefaultImputeProportion is the fraction of the detection limit used as delta
// when no explicit delta is configured.
const DefaultImputeProportion = 0.65

// ImputeConfig holds the imputation parameters. The zero value is valid:
// multiplicative, δ = 0.65 × detection limit, S = column sum.
type ImputeConfig struct {
	// Method selects the strategy.
	Method ImputeMethod
	// Delta is a global replacement value; 0 means unset.
	Delta float64
	// SampleDeltas overrides Delta per sample; nil means unset.
	SampleDeltas []float64
	// Proportion scales the detection limit; 0 means DefaultImputeProportion.
	// Must lie in (0, 1].
	Proportion float64
	// SumConstraint is the multiplicative total for every sample; 0 means the column sum.
	SumConstraint float64
	// SampleSums overrides SumConstraint per sample; nil means unset.
	SampleSums []float64
}

// hasExplicitDelta reports whether sample j gets a caller-provided delta.
func (c ImputeConfig) hasExplicitDelta() bool {
	return c.Delta > 0 || c.SampleDeltas != nil
}

// proportion resolves the effective proportion.
func (c ImputeConfig) proportion() float64 {
	if c.Proportion == 0 {
		return DefaultImputeProportion
	}

	return c.Proportion
}

// validate checks the shape-independent parameters.
func (c ImputeConfig) validate() error {
	switch c.Method {
	case ImputeMultiplicative, ImputeAdditive:
	default:
		return errors.Wrapf(ErrConfiguration, "impute method %s", c.Method)
	}
	if !isFinite(c.Proportion) || c.Proportion < 0 || c.Proportion > 1 {
		return errors.WithHint(
			errors.Wrapf(ErrConfiguration, "impute proportion %v", c.Proportion),
			"the proportion must lie in (0, 1]")
	}
	if !isFinite(c.Delta) || c.Delta < 0 {
		return errors.Wrapf(ErrConfiguration, "delta %v", c.Delta)
	}
	if !isFinite(c.SumConstraint) || c.SumConstraint < 0 {
		return errors.Wrapf(ErrConfiguration, "sum constraint %v", c.SumConstraint)
	}
	for j, d := range c.SampleDeltas {
		if !isFinite(d) || d <= 0 {
			return errors.Wrapf(ErrConfiguration, "sample delta[%d] = %v", j, d)
		}
	}
	for j, s := range c.SampleSums {
		if !isFinite(s) || s <= 0 {
			return errors.Wrapf(ErrConfiguration, "sample sum[%d] = %v", j, s)
		}
	}
	if c.Method == ImputeAdditive && !c.hasExplicitDelta() {
		return errors.WithHint(
			errors.Wrap(ErrConfiguration, "additive imputation requires a delta"),
			"set Delta or SampleDeltas, or use the multiplicative method")
	}

	return nil
}

// validateFor adds the checks that depend on the number of samples.
func (c ImputeConfig) validateFor(samples int) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.SampleDeltas != nil && len(c.SampleDeltas) != samples {
		return errors.Wrapf(ErrConfiguration, "%d sample deltas for %d samples", len(c.SampleDeltas), samples)
	}
	if c.SampleSums != nil && len(c.SampleSums) != samples {
		return errors.Wrapf(ErrConfiguration, "%d sample sums for %d samples", len(c.SampleSums), samples)
	}

	return nil
}

// deltaFor resolves δ for sample j. minPos/hasPos describe the sample's
// detection limit.
func (c ImputeConfig) deltaFor(j int, minPos float64, hasPos bool) (float64, bool) {
	switch {
	case c.SampleDeltas != nil:
		return c.SampleDeltas[j], true
	case c.Delta > 0:
		return c.Delta, true
	case hasPos:
		return c.proportion() * minPos, true
	default:
		return 0, false
	}
}

// sumFor resolves S for sample j.
func (c ImputeConfig) sumFor(j int, colSum float64) float64 {
	switch {
	case c.SampleSums != nil:
		return c.SampleSums[j]
	case c.SumConstraint > 0:
		return c.SumConstraint
	default:
		return colSum
	}
}

// Impute replaces every zero of a features × samples matrix.
// MAIN DESCRIPTION:
//   - Column-wise: resolve δ and S, rescale the non-zero parts, fill the zeros.
//
// Implementation:
//   - Stage 1: validate cfg against the sample count.
//   - Stage 2: one pass of column reductions (zero counts, detection limits, sums).
//   - Stage 3: per-sample factors (1 − k·δ/S multiplicative, 1 additive) → ScaleCols.
//   - Stage 4: per column with zeros, Col → fillZeros → SetCol.
//
// Returns:
//   - the imputed matrix (fresh; m is untouched) with no zero entries,
//   - the δ used for every sample.
//
// Errors:
//   - ErrConfiguration (see ImputeConfig.validate).
//   - ErrDegenerateInput: an all-zero sample with no explicit δ, or k·δ ≥ S.
//   - ErrInvalidInput: negative or non-finite entries.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Impute(m *matrix.Dense, cfg ImputeConfig) (*matrix.Dense, []float64, error) {
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
	}
	c := m.Cols()
	if err := cfg.validateFor(c); err != nil {
		return nil, nil, errors.Wrap(err, stageImpute)
	}

	zeros, err := matrix.ColZeroCounts(m)
	if err != nil {
		return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
	}
	mins, hasPos, err := matrix.ColMinPositive(m)
	if err != nil {
		return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
	}
	sums, err := matrix.ColSums(m)
	if err != nil {
		return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
	}

	deltas := make([]float64, c)
	factors := make([]float64, c)
	for j := 0; j < c; j++ {
		delta, ok := cfg.deltaFor(j, mins[j], hasPos[j])
		if !ok {
			return nil, nil, errors.WithHint(
				errors.Wrapf(ErrDegenerateInput, "%s: sample %d is all zero", stageImpute, j),
				"supply an explicit delta or drop the sample")
		}
		deltas[j] = delta
		factors[j] = 1
		if zeros[j] == 0 || cfg.Method == ImputeAdditive {
			continue
		}
		if factors[j], err = rescaleFactor(zeros[j], delta, cfg.sumFor(j, sums[j])); err != nil {
			return nil, nil, errors.Wrapf(err, "%s: sample %d", stageImpute, j)
		}
	}

	// Zeros stay zero under the rescale; they are filled afterwards.
	out, err := matrix.ScaleCols(m, factors)
	if err != nil {
		return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
	}
	var col []float64
	for j := 0; j < c; j++ {
		if zeros[j] == 0 {
			continue
		}
		if col, err = out.Col(j); err != nil {
			return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
		}
		fillZeros(col, deltas[j])
		if err = out.SetCol(j, col); err != nil {
			return nil, nil, stageErrorf(stageImpute, ErrInvalidInput, err)
		}
	}

	return out, deltas, nil
}

// rescaleFactor is the multiplicative replacement factor 1 − k·δ/S applied to
// the non-zero parts of a sample. total == 0 (an all-zero sample without a sum
// constraint) leaves the sample unscaled.
func rescaleFactor(k int, delta, total float64) (float64, error) {
	if total <= 0 {
		return 1, nil
	}
	factor := 1 - float64(k)*delta/total
	if factor <= 0 {
		return 0, errors.WithHint(
			errors.Wrapf(ErrDegenerateInput, "%d zeros × delta %v exhaust sum %v", k, delta, total),
			"lower the delta or the impute proportion")
	}

	return factor, nil
}

// fillZeros rewrites col in place: zeros → delta.
func fillZeros(col []float64, delta float64) {
	for i, v := range col {
		if v == 0 {
			col[i] = delta
		}
	}
}
