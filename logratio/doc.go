// SPDX-License-Identifier: MIT

// Package logratio implements compositional logratio transformations (CLR,
// and ALR through a reference denominator) for abundance tables such as
// transcript expression estimates.
//
// Compositional data only carry relative information, so each sample is
// divided by a per-sample denominator and logged. Zeros break that step; the
// package separates essential zeros (a feature absent from every sample, which
// may be dropped) from rounded zeros (detection-limit artefacts, which are
// imputed).
//
// Pipeline:
//
//	orient → remove essential zeros (optional) → impute → denominator → log_b(x / d_j)
//
// Example:
//
//	t, _ := logratio.NewTable(features, samples, counts)
//	res, err := logratio.Transform(t,
//		logratio.WithBase(logratio.Base2),
//		logratio.WithRemoveEssentialZeros(true),
//		logratio.WithDenominatorMode(logratio.DenomDESeq2),
//	)
//
// Every failure matches one of ErrConfiguration, ErrDegenerateInput,
// ErrInvalidMode, ErrInvalidBase, ErrZeroValue or ErrInvalidInput through
// errors.Is. The package does not log.
package logratio
