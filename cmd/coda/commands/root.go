// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the coda binary.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/internal/config"
	"github.com/katalvlaran/coda/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Persistent flag names.
const (
	flagConfig  = "config"
	flagLogJSON = "log-json"
	flagVerbose = "verbose"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

// NewRootCmd builds a fresh command tree. Each call is independent, which
// keeps tests free of global flag state.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "coda",
		Short: "coda - compositional logratio transforms for abundance tables",
		Long: `coda turns non-negative abundance tables (features x samples) into
centered or reference logratios, handling zeros along the way.

Available commands:
  transform - transform a single table
  batch     - transform many tables in parallel (e.g. bootstrap resamples)
  version   - print version information

Examples:
  coda transform --in counts.tsv --out clr.tsv --base 2
  coda transform --in counts.tsv --out clr.tsv --denominator DESeq2 --report run.yaml
  coda batch --in boot1.tsv --in boot2.tsv --out-dir clr/ --workers 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "config file (.yaml or .toml)")
	pf.Bool(flagLogJSON, false, "emit JSON logs")
	pf.BoolP(flagVerbose, "v", false, "debug logging")

	root.AddCommand(newTransformCmd(a), newBatchCmd(a), newVersionCmd())

	return root
}

// setup binds flags, loads configuration and initializes the logger.
func (a *app) setup(cmd *cobra.Command) error {
	bindings := map[string]string{
		flagLogJSON: "log.json",
		flagVerbose: "log.verbose",
	}
	for name, key := range transformFlagKeys {
		bindings[name] = key
	}
	bindings[flagWorkers] = "batch.workers"

	if err := bindFlags(a.v, cmd.Flags(), bindings); err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err = logger.Initialize(cfg.Log.JSON, cfg.Log.Verbose); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	return nil
}

// bindFlags binds every flag present on fs to its viper key; absent flags are skipped.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, bindings map[string]string) error {
	for name, key := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}

	return nil
}
