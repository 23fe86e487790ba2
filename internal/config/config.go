// SPDX-License-Identifier: MIT

// Package config loads coda settings from defaults, an optional YAML/TOML
// file, CODA_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/logratio"
)

// Config is the full coda configuration.
type Config struct {
	Transform TransformConfig `mapstructure:"transform" yaml:"transform"`
	Batch     BatchConfig     `mapstructure:"batch" yaml:"batch"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// TransformConfig mirrors the Transform options as plain strings and numbers.
type TransformConfig struct {
	Base                 string  `mapstructure:"base" yaml:"base"`
	Denominator          string  `mapstructure:"denominator" yaml:"denominator"`
	Impute               string  `mapstructure:"impute" yaml:"impute"`
	Delta                float64 `mapstructure:"delta" yaml:"delta"`
	ImputeProportion     float64 `mapstructure:"impute_proportion" yaml:"impute_proportion"`
	SumConstraint        float64 `mapstructure:"sum_constraint" yaml:"sum_constraint"`
	RemoveEssentialZeros bool    `mapstructure:"remove_essential_zeros" yaml:"remove_essential_zeros"`
	Orientation          string  `mapstructure:"orientation" yaml:"orientation"`
}

// BatchConfig tunes the batch command.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	JSON    bool `mapstructure:"json" yaml:"json"`
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Options parses the transform section into logratio options.
// Every string is validated here so bad values fail before any I/O.
func (c TransformConfig) Options() ([]logratio.Option, error) {
	base, err := logratio.ParseBase(c.Base)
	if err != nil {
		return nil, errors.Wrap(err, "transform.base")
	}
	mode, err := logratio.ParseDenominatorMode(c.Denominator)
	if err != nil {
		return nil, errors.Wrap(err, "transform.denominator")
	}
	method, err := logratio.ParseImputeMethod(c.Impute)
	if err != nil {
		return nil, errors.Wrap(err, "transform.impute")
	}
	orientation, err := logratio.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, errors.Wrap(err, "transform.orientation")
	}

	return []logratio.Option{
		logratio.WithBase(base),
		logratio.WithDenominatorMode(mode),
		logratio.WithImpute(logratio.ImputeConfig{
			Method:        method,
			Delta:         c.Delta,
			Proportion:    c.ImputeProportion,
			SumConstraint: c.SumConstraint,
		}),
		logratio.WithRemoveEssentialZeros(c.RemoveEssentialZeros),
		logratio.WithOrientation(orientation),
	}, nil
}
