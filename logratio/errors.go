// SPDX-License-Identifier: MIT
// Package logratio: sentinel error set.
//
// Every failure returned by this package matches exactly one of the sentinels
// below through errors.Is. Lower-level matrix sentinels stay reachable too:
// a zero reaching the logarithm matches both ErrZeroValue and
// matrix.ErrNonPositive.

package logratio

import "github.com/cockroachdb/errors"

var (
	// ErrConfiguration signals an inconsistent or incomplete parameter set,
	// e.g. additive imputation without a delta or a proportion outside (0,1].
	ErrConfiguration = errors.New("logratio: invalid configuration")

	// ErrDegenerateInput signals input the pipeline cannot turn into a composition:
	// every feature removed as an essential zero, an all-zero sample with no
	// explicit delta, or imputed mass that exceeds the sum constraint.
	ErrDegenerateInput = errors.New("logratio: degenerate input")

	// ErrInvalidMode signals an unrecognized denominator mode.
	ErrInvalidMode = errors.New("logratio: invalid denominator mode")

	// ErrInvalidBase signals an unrecognized logarithm base.
	ErrInvalidBase = errors.New("logratio: invalid logarithm base")

	// ErrZeroValue signals a zero entry or a non-positive denominator reaching
	// the logarithm step.
	ErrZeroValue = errors.New("logratio: zero value before logarithm")

	// ErrInvalidInput signals a malformed table: nil data, label/shape mismatch,
	// or negative / non-finite abundances.
	ErrInvalidInput = errors.New("logratio: invalid input table")
)

// Stage tags used as wrap prefixes.
const (
	stageValidate    = "validate"
	stageOrient      = "orient"
	stageEssential   = "essential zeros"
	stageImpute      = "impute"
	stageDenominator = "denominator"
	stageLogRatio    = "logratio"
	stageBatch       = "batch"
)

// kindError pairs a sentinel from the set above with the stage-tagged cause.
// Both sit on the Unwrap chain, so errors.Is matches either one with the
// standard library as well as with cockroachdb/errors.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string { return e.kind.Error() + ": " + e.cause.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.cause} }

// stageErrorf tags err with the pipeline stage and classifies it as kind.
// Returns nil when err is nil.
func stageErrorf(stage string, kind, err error) error {
	if err == nil {
		return nil
	}

	return &kindError{kind: kind, cause: errors.Wrap(err, stage)}
}

// IsConfigurationError reports whether err is or wraps ErrConfiguration.
func IsConfigurationError(err error) bool {
	return err != nil && errors.Is(err, ErrConfiguration)
}

// IsDegenerateInputError reports whether err is or wraps ErrDegenerateInput.
func IsDegenerateInputError(err error) bool {
	return err != nil && errors.Is(err, ErrDegenerateInput)
}
