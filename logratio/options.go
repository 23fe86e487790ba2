// SPDX-License-Identifier: MIT
// Package logratio: functional options for Transform.
//
// Defaults (the zero Options):
//   - base e, no essential-zero removal, multiplicative imputation with
//     δ = 0.65 × detection limit, geometric-mean denominator, automatic
//     orientation.
//
// Option setters never fail; Transform validates the gathered values and
// returns ErrInvalidBase / ErrInvalidMode / ErrConfiguration on bad input.

package logratio

import "github.com/cockroachdb/errors"

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the effective configuration of one Transform call.
type Options struct {
	base                 Base
	removeEssentialZeros bool
	impute               ImputeConfig
	mode                 DenominatorMode
	denominator          Denominator // overrides mode when non-nil
	orientation          Orientation
}

// WithBase selects the logarithm base.
func WithBase(b Base) Option {
	return func(o *Options) { o.base = b }
}

// WithRemoveEssentialZeros toggles dropping all-zero features before imputation.
func WithRemoveEssentialZeros(on bool) Option {
	return func(o *Options) { o.removeEssentialZeros = on }
}

// WithImpute sets the imputation parameters. Slices are copied.
func WithImpute(cfg ImputeConfig) Option {
	cfg.SampleDeltas = cloneFloats(cfg.SampleDeltas)
	cfg.SampleSums = cloneFloats(cfg.SampleSums)

	return func(o *Options) { o.impute = cfg }
}

// WithDenominatorMode selects a built-in denominator.
func WithDenominatorMode(m DenominatorMode) Option {
	return func(o *Options) { o.mode = m }
}

// WithDenominator installs a custom Denominator, overriding the mode.
// Passing nil restores the mode's built-in.
func WithDenominator(d Denominator) Option {
	return func(o *Options) { o.denominator = d }
}

// WithOrientation selects which axis holds the features.
func WithOrientation(or Orientation) Option {
	return func(o *Options) { o.orientation = or }
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// resolve validates o and returns the denominator to use.
func (o Options) resolve() (Denominator, error) {
	if !o.base.valid() {
		return nil, errors.Wrapf(ErrInvalidBase, "base %s", o.base)
	}
	if !o.orientation.valid() {
		return nil, errors.Wrapf(ErrConfiguration, "orientation %s", o.orientation)
	}
	if err := o.impute.validate(); err != nil {
		return nil, err
	}
	if o.denominator != nil {
		return o.denominator, nil
	}

	return o.mode.Denominator()
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
