// SPDX-License-Identifier: MIT
// Package logratio: the logratio core and the Transform pipeline.
//
// Pipeline (features × samples after orientation):
//
//	orient → [remove essential zeros] → impute → denominator → log_b(x / d_j) → orient back
//
// Every stage allocates a fresh matrix; the input table is never modified and
// no state survives a call, so Transform is safe for concurrent use.

package logratio

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/matrix"
)

// Diagnostics describes what a Transform call did. Per-sample slices are
// indexed like the samples of the input, whatever its orientation.
type Diagnostics struct {
	// Transposed is true when the input held samples on its rows.
	Transposed bool
	// Features and Samples are the counts after orientation, before filtering.
	Features, Samples int
	// DroppedFeatures lists the indices (on the feature axis of the input)
	// removed as essential zeros; DroppedIDs their labels when the axis is labelled.
	DroppedFeatures []int
	DroppedIDs      []string
	// ZeroCounts is the number of zeros imputed per sample.
	ZeroCounts []int
	// Deltas is the replacement value used per sample.
	Deltas []float64
	// Denominators is the normalizing value per sample.
	Denominators []float64
}

// Result is a transformed table plus its diagnostics. Table keeps the input's
// orientation and labels; only dropped essential-zero features are missing.
type Result struct {
	Table       *Table
	Diagnostics Diagnostics
}

// LogRatio computes out[i,j] = log_b(m[i,j] / denom[j]).
// MAIN DESCRIPTION:
//   - The final stage: every entry must already be strictly positive.
//
// Errors:
//   - ErrZeroValue: a zero entry, or a zero / negative / non-finite denominator.
//   - ErrInvalidInput: a negative or non-finite entry, len(denom) != Cols().
//   - ErrInvalidBase: unknown base.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func LogRatio(m *matrix.Dense, denom []float64, base Base) (*matrix.Dense, error) {
	if !base.valid() {
		return nil, errors.Wrapf(ErrInvalidBase, "base %s", base)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, stageErrorf(stageLogRatio, ErrInvalidInput, err)
	}
	if err := matrix.ValidateStrictlyPositive(m); err != nil {
		return nil, errors.WithHint(
			stageErrorf(stageLogRatio, ErrZeroValue, err),
			"impute zeros before taking logratios")
	}
	if err := matrix.ValidateVecLen(denom, m.Cols()); err != nil {
		return nil, stageErrorf(stageLogRatio, ErrInvalidInput, err)
	}
	for j, d := range denom {
		if !isFinite(d) || d <= 0 {
			return nil, errors.Wrapf(ErrZeroValue, "%s: denominator[%d] = %v", stageLogRatio, j, d)
		}
	}

	ratio, err := matrix.DivideCols(m, denom)
	if err != nil {
		return nil, stageErrorf(stageLogRatio, ErrZeroValue, err)
	}
	out, err := base.logMatrix(ratio)
	if err != nil {
		// Underflowed ratios are the only way to get here.
		return nil, stageErrorf(stageLogRatio, ErrZeroValue, err)
	}

	return out, nil
}

// Transform runs the full pipeline on t.
// MAIN DESCRIPTION:
//   - Orientation, optional essential-zero filter, zero imputation,
//     per-sample denominator, logratio, orientation restored.
//
// Errors:
//   - ErrInvalidInput, ErrConfiguration, ErrDegenerateInput, ErrInvalidMode,
//     ErrInvalidBase, ErrZeroValue. No partial result is returned.
//
// Complexity:
//   - Time O(r*c) for geomean, O(c · r log r) for DESeq2. Space O(r*c).
//
// AI-Hints:
//   - Multiplying a sample by c > 0 multiplies its geomean denominator by c, so
//     log(x) and log(denominator) both shift by log(c) and the CLR is unchanged.
func Transform(t *Table, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	denom, err := o.resolve()
	if err != nil {
		return nil, err
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	work, transposed, err := orient(t, o.orientation)
	if err != nil {
		return nil, err
	}
	diag := Diagnostics{
		Transposed: transposed,
		Features:   work.Rows(),
		Samples:    work.Cols(),
	}

	if o.removeEssentialZeros {
		var dropped []int
		featureIDs := work.RowIDs
		if work, dropped, err = RemoveEssentialZeros(work); err != nil {
			return nil, err
		}
		diag.DroppedFeatures = dropped
		if featureIDs != nil {
			for _, i := range dropped {
				diag.DroppedIDs = append(diag.DroppedIDs, featureIDs[i])
			}
		}
	}

	if diag.ZeroCounts, err = matrix.ColZeroCounts(work.Data); err != nil {
		return nil, stageErrorf(stageImpute, ErrInvalidInput, err)
	}
	imputed, deltas, err := Impute(work.Data, o.impute)
	if err != nil {
		return nil, err
	}
	diag.Deltas = deltas

	if diag.Denominators, err = denom.Compute(imputed); err != nil {
		return nil, errors.Wrapf(err, "%T", denom)
	}

	lr, err := LogRatio(imputed, diag.Denominators, o.base)
	if err != nil {
		return nil, err
	}
	out := work.withData(lr)
	if transposed {
		if out, err = out.Transpose(); err != nil {
			return nil, stageErrorf(stageOrient, ErrInvalidInput, err)
		}
	}

	return &Result{Table: out, Diagnostics: diag}, nil
}

// TransformWith is the string-parameter entry point: base "e"|"2",
// mode "geomean"|"DESeq2". Strings are validated before any work is done.
func TransformWith(t *Table, base string, removeEssentialZeros bool, cfg ImputeConfig, mode string) (*Table, error) {
	b, err := ParseBase(base)
	if err != nil {
		return nil, err
	}
	m, err := ParseDenominatorMode(mode)
	if err != nil {
		return nil, err
	}
	res, err := Transform(t,
		WithBase(b),
		WithRemoveEssentialZeros(removeEssentialZeros),
		WithImpute(cfg),
		WithDenominatorMode(m),
	)
	if err != nil {
		return nil, err
	}

	return res.Table, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
