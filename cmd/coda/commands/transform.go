// SPDX-License-Identifier: MIT
package commands

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/internal/logger"
	"github.com/katalvlaran/coda/internal/report"
	"github.com/katalvlaran/coda/internal/tsv"
	"github.com/katalvlaran/coda/logratio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Transform flag names.
const (
	flagIn                   = "in"
	flagOut                  = "out"
	flagReport               = "report"
	flagBase                 = "base"
	flagDenominator          = "denominator"
	flagImpute               = "impute"
	flagDelta                = "delta"
	flagImputeProportion     = "impute-proportion"
	flagSumConstraint        = "sum-constraint"
	flagRemoveEssentialZeros = "remove-essential-zeros"
	flagOrientation          = "orientation"
)

// transformFlagKeys maps the shared pipeline flags to config keys.
var transformFlagKeys = map[string]string{
	flagBase:                 "transform.base",
	flagDenominator:          "transform.denominator",
	flagImpute:               "transform.impute",
	flagDelta:                "transform.delta",
	flagImputeProportion:     "transform.impute_proportion",
	flagSumConstraint:        "transform.sum_constraint",
	flagRemoveEssentialZeros: "transform.remove_essential_zeros",
	flagOrientation:          "transform.orientation",
}

// addPipelineFlags declares the flags shared by transform and batch.
// Defaults shown here are informational; the effective ones come from config.
func addPipelineFlags(fs *pflag.FlagSet) {
	fs.String(flagBase, "e", `logarithm base: "e" or "2"`)
	fs.String(flagDenominator, "geomean", `denominator: "geomean" or "DESeq2"`)
	fs.String(flagImpute, "multiplicative", `zero imputation: "multiplicative" or "additive"`)
	fs.Float64(flagDelta, 0, "replacement value for zeros (0 = proportion x detection limit)")
	fs.Float64(flagImputeProportion, logratio.DefaultImputeProportion, "fraction of the detection limit used as delta")
	fs.Float64(flagSumConstraint, 0, "per-sample total for multiplicative imputation (0 = column sum)")
	fs.Bool(flagRemoveEssentialZeros, false, "drop features that are zero in every sample")
	fs.String(flagOrientation, "auto", `feature axis: "auto", "features" (rows) or "samples" (rows)`)
}

func newTransformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform one abundance table",
		Long: `Read a TSV abundance table, impute zeros, divide every sample by its
denominator and write the logratios as TSV (stdout when --out is omitted).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, _ := cmd.Flags().GetString(flagIn)
			out, _ := cmd.Flags().GetString(flagOut)
			rep, _ := cmd.Flags().GetString(flagReport)
			return a.runTransform(cmd, in, out, rep)
		},
	}
	cmd.Flags().String(flagIn, "", "input TSV file (required)")
	cmd.Flags().String(flagOut, "", "output TSV file (default stdout)")
	cmd.Flags().String(flagReport, "", "write a YAML diagnostics report to this file")
	_ = cmd.MarkFlagRequired(flagIn)
	addPipelineFlags(cmd.Flags())

	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, in, out, rep string) error {
	log := logger.Named("transform")
	opts, err := a.cfg.Transform.Options()
	if err != nil {
		return err
	}

	start := time.Now()
	tbl, corner, err := tsv.ReadFile(in)
	if err != nil {
		return err
	}
	log.Debugw("table loaded",
		logger.FieldFile, in,
		logger.FieldFeatures, tbl.Rows(),
		logger.FieldSamples, tbl.Cols())

	res, err := logratio.Transform(tbl, opts...)
	if err != nil {
		return errors.Wrapf(err, "transform %s", in)
	}

	if out == "" {
		err = tsv.Write(cmd.OutOrStdout(), res.Table, corner)
	} else {
		err = tsv.WriteFile(out, res.Table, corner)
	}
	if err != nil {
		return err
	}

	if rep != "" {
		sampleIDs := tbl.ColIDs
		if res.Diagnostics.Transposed {
			sampleIDs = tbl.RowIDs
		}
		if err = report.New(in, out, a.cfg.Transform, sampleIDs, res).WriteFile(rep); err != nil {
			return err
		}
	}

	d := res.Diagnostics
	log.Infow("table transformed",
		logger.FieldFile, in,
		logger.FieldBase, a.cfg.Transform.Base,
		logger.FieldDenominator, a.cfg.Transform.Denominator,
		logger.FieldTransposed, d.Transposed,
		logger.FieldDropped, len(d.DroppedFeatures),
		logger.FieldZeros, sumInts(d.ZeroCounts),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return nil
}

func sumInts(v []int) int {
	var s int
	for _, x := range v {
		s += x
	}

	return s
}
