// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors toggling the finite-only guard,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set()/SetCol()/ingestion reject NaN/Inf.
//     Abundance tables are finite by contract, so the guard is on by default.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables the finite-only guard on ingestion, Set and SetCol.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only guard. Use only for controlled
// ingestion where NaN/Inf are filtered later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order (last writer wins).
// Nil Option values are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
