// SPDX-License-Identifier: MIT
package commands

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/internal/logger"
	"github.com/katalvlaran/coda/internal/tsv"
	"github.com/katalvlaran/coda/logratio"
	"github.com/spf13/cobra"
)

// Batch flag names.
const (
	flagOutDir  = "out-dir"
	flagWorkers = "workers"
)

// outputSuffix replaces the input extension in batch outputs.
const outputSuffix = ".logratio.tsv"

// errOutputCollision rejects a batch whose inputs would overwrite each other.
var errOutputCollision = errors.New("batch: inputs share an output name")

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Transform many tables in parallel",
		Long: `Transform every --in table with the same parameters, using a bounded
worker pool. Outputs are written to --out-dir as <name>` + outputSuffix + `.
The first failing table aborts the batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ins, _ := cmd.Flags().GetStringArray(flagIn)
			outDir, _ := cmd.Flags().GetString(flagOutDir)
			return a.runBatch(cmd, ins, outDir)
		},
	}
	cmd.Flags().StringArray(flagIn, nil, "input TSV file (repeatable, required)")
	cmd.Flags().String(flagOutDir, ".", "directory for the transformed tables")
	cmd.Flags().Int(flagWorkers, 0, "parallel transforms (0 = number of CPUs)")
	_ = cmd.MarkFlagRequired(flagIn)
	addPipelineFlags(cmd.Flags())

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, ins []string, outDir string) error {
	log := logger.Named("batch")
	opts, err := a.cfg.Transform.Options()
	if err != nil {
		return err
	}
	outs, err := outputNames(ins)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", outDir)
	}

	start := time.Now()
	tables := make([]*logratio.Table, len(ins))
	corners := make([]string, len(ins))
	for i, in := range ins {
		if tables[i], corners[i], err = tsv.ReadFile(in); err != nil {
			return err
		}
	}

	results, err := logratio.TransformBatch(cmd.Context(), tables, a.cfg.Batch.Workers, opts...)
	if err != nil {
		return err
	}

	for i, res := range results {
		out := filepath.Join(outDir, outs[i])
		if err = tsv.WriteFile(out, res.Table, corners[i]); err != nil {
			return err
		}
		log.Debugw("table written", logger.FieldFile, out)
	}

	log.Infow("batch transformed",
		logger.FieldCount, len(results),
		logger.FieldWorkers, a.cfg.Batch.Workers,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return nil
}

// outputNames maps every input to its output file name and fails when two
// inputs collide, e.g. rep1/abundance.tsv and rep2/abundance.tsv.
func outputNames(ins []string) ([]string, error) {
	outs := make([]string, len(ins))
	seen := make(map[string]string, len(ins))
	for i, in := range ins {
		outs[i] = outputName(in)
		if prev, ok := seen[outs[i]]; ok {
			return nil, errors.WithHint(
				errors.Wrapf(errOutputCollision, "%s and %s both write %s", prev, in, outs[i]),
				"rename the inputs or split them across --out-dir runs")
		}
		seen[outs[i]] = in
	}

	return outs, nil
}

// outputName maps "dir/boot1.tsv" to "boot1.logratio.tsv".
func outputName(in string) string {
	base := filepath.Base(in)
	return strings.TrimSuffix(base, filepath.Ext(base)) + outputSuffix
}
