// Package coda is a compositional-data toolkit: logratio transformations of
// abundance tables (transcript or taxon counts, expression estimates) with
// principled handling of zeros.
//
// What is in the box?
//
//	matrix/    row-major Dense matrix plus the kernels a logratio pipeline needs:
//	             column broadcasts, logarithms, geometric means, medians, validators
//	logratio/  the pipeline: orientation, essential-zero filter, zero imputation
//	             (multiplicative / additive), denominators (geometric mean, DESeq2
//	             size factor, reference features) and the logratio core
//	cmd/coda/  command-line front end (transform, batch, version)
//	internal/  config (viper), logger (zap), TSV I/O and YAML reports
//
// Quick start:
//
//	t, _ := logratio.NewTable(genes, samples, counts)
//	res, err := logratio.Transform(t, logratio.WithBase(logratio.Base2))
//	if err != nil {
//		// errors.Is(err, logratio.ErrDegenerateInput) ...
//	}
//	clr := res.Table
//
// The core packages are pure functions over fresh allocations: no globals,
// no logging, safe for concurrent use.
package coda
