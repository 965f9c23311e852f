// SPDX-License-Identifier: MIT
// Package: ldpcconfig
//
// config.go — Load reads a YAML run-configuration file into Params and
// RunOptions.

package ldpcconfig

import (
	"fmt"
	"os"

	"github.com/lvlath/ldpc"
	"gopkg.in/yaml.v3"
)

// RunOptions holds the decoder and RNG knobs a driver program needs that
// are not part of the code's structural parameters.
type RunOptions struct {
	Seed           int64   `yaml:"seed"`
	MaxIterations  int     `yaml:"max_iterations"`
	EpsilonLo      float64 `yaml:"epsilon_lo"`
	EpsilonHi      float64 `yaml:"epsilon_hi"`
	StopOnSyndrome bool    `yaml:"stop_on_syndrome"`
}

// fileSchema mirrors the on-disk YAML layout; it is kept separate from
// ldpc.Params and RunOptions so the public types stay free of yaml tags.
type fileSchema struct {
	N              int     `yaml:"n"`
	Wc             int     `yaml:"wc"`
	Wr             int     `yaml:"wr"`
	Seed           int64   `yaml:"seed"`
	MaxIterations  int     `yaml:"max_iterations"`
	EpsilonLo      float64 `yaml:"epsilon_lo"`
	EpsilonHi      float64 `yaml:"epsilon_hi"`
	StopOnSyndrome bool    `yaml:"stop_on_syndrome"`
}

// defaultRunOptions mirrors spa.DefaultOptions so a config file that omits
// the decoder knobs still produces a usable RunOptions.
func defaultRunOptions() RunOptions {
	return RunOptions{
		Seed:           1,
		MaxIterations:  50,
		EpsilonLo:      1e-7,
		EpsilonHi:      30,
		StopOnSyndrome: true,
	}
}

// Load reads the YAML file at path and returns the parsed Params and
// RunOptions. Params is validated via Params.Validate before returning.
func Load(path string) (ldpc.Params, RunOptions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ldpc.Params{}, RunOptions{}, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}

	opts := defaultRunOptions()
	schema := fileSchema{
		Seed:           opts.Seed,
		MaxIterations:  opts.MaxIterations,
		EpsilonLo:      opts.EpsilonLo,
		EpsilonHi:      opts.EpsilonHi,
		StopOnSyndrome: opts.StopOnSyndrome,
	}
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return ldpc.Params{}, RunOptions{}, fmt.Errorf("%w: %s: %v", ErrParseFailed, path, err)
	}

	params := ldpc.Params{N: schema.N, Wc: schema.Wc, Wr: schema.Wr}
	if err := params.Validate(); err != nil {
		return ldpc.Params{}, RunOptions{}, err
	}

	return params, RunOptions{
		Seed:           schema.Seed,
		MaxIterations:  schema.MaxIterations,
		EpsilonLo:      schema.EpsilonLo,
		EpsilonHi:      schema.EpsilonHi,
		StopOnSyndrome: schema.StopOnSyndrome,
	}, nil
}
