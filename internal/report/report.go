// SPDX-License-Identifier: MIT

// Package report renders transform diagnostics as a YAML document.
package report

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/internal/config"
	"github.com/katalvlaran/coda/logratio"
	"gopkg.in/yaml.v3"
)

// Report is the YAML-facing summary of one transform.
type Report struct {
	Input      string                 `yaml:"input"`
	Output     string                 `yaml:"output,omitempty"`
	CreatedAt  time.Time              `yaml:"created_at"`
	Parameters config.TransformConfig `yaml:"parameters"`
	Features   int                    `yaml:"features"`
	Samples    int                    `yaml:"samples"`
	Transposed bool                   `yaml:"transposed"`
	Dropped    []string               `yaml:"dropped_features,omitempty"`
	PerSample  []SampleStats          `yaml:"per_sample"`
}

// SampleStats holds the per-sample diagnostics.
type SampleStats struct {
	ID          string  `yaml:"id"`
	Zeros       int     `yaml:"zeros"`
	Delta       float64 `yaml:"delta"`
	Denominator float64 `yaml:"denominator"`
}

// New builds a Report from a Transform result. sampleIDs may be nil.
func New(input, output string, params config.TransformConfig, sampleIDs []string, res *logratio.Result) *Report {
	d := res.Diagnostics
	r := &Report{
		Input:      input,
		Output:     output,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Parameters: params,
		Features:   d.Features,
		Samples:    d.Samples,
		Transposed: d.Transposed,
		Dropped:    d.DroppedIDs,
		PerSample:  make([]SampleStats, d.Samples),
	}
	for j := range r.PerSample {
		s := SampleStats{Zeros: d.ZeroCounts[j], Delta: d.Deltas[j], Denominator: d.Denominators[j]}
		if sampleIDs != nil {
			s.ID = sampleIDs[j]
		}
		r.PerSample[j] = s
	}

	return r
}

// Write encodes r as YAML.
func (r *Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}

// WriteFile writes r to path.
func (r *Report) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}
