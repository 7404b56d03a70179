// SPDX-License-Identifier: MIT

// Package config loads quickmaths CLI settings.
//
// Sources, later ones winning:
//
//	Default()                    built-in values
//	TOML file                    optional, see Load
//	QUICKMATHS_* environment     e.g. QUICKMATHS_EVALUATION_SUM_MAX_ITERS=5000
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/quickmaths/internal/logging"
	"github.com/katalvlaran/quickmaths/stats"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "QUICKMATHS"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Evaluation precisions.
const (
	PrecisionFloat64 = "float64"
	PrecisionFloat32 = "float32"
)

// Sentinel errors returned by Validate.
var (
	ErrBadFormat    = errors.New("config: output format must be text, json or yaml")
	ErrBadPrecision = errors.New("config: precision must be float32 or float64")
	ErrBadMaxIters  = stats.ErrBadMaxIters
)

// Config holds the complete CLI configuration.
type Config struct {
	Evaluation EvaluationConfig `toml:"evaluation"`
	Output     OutputConfig     `toml:"output"`
	Log        LogConfig        `toml:"log"`
}

// EvaluationConfig caps the work of a single erf evaluation.
type EvaluationConfig struct {
	SumMaxIters      int `toml:"sum_max_iters" envconfig:"SUM_MAX_ITERS"`
	FractionMaxIters int `toml:"fraction_max_iters" envconfig:"FRACTION_MAX_ITERS"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	Format    string `toml:"format" envconfig:"FORMAT"`
	Precision string `toml:"precision" envconfig:"PRECISION"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `toml:"level" envconfig:"LEVEL"`
	Development bool   `toml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Evaluation: EvaluationConfig{
			SumMaxIters:      stats.DefaultSumMaxIters,
			FractionMaxIters: stats.DefaultFractionMaxIters,
		},
		Output: OutputConfig{
			Format:    FormatText,
			Precision: PrecisionFloat64,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load layers the TOML file at path (skipped when path is empty) and the
// environment over Default, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if c.Evaluation.SumMaxIters <= 0 || c.Evaluation.FractionMaxIters <= 0 {
		return fmt.Errorf("evaluation caps %d/%d: %w",
			c.Evaluation.SumMaxIters, c.Evaluation.FractionMaxIters, ErrBadMaxIters)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%q: %w", c.Output.Format, ErrBadFormat)
	}
	switch c.Output.Precision {
	case PrecisionFloat32, PrecisionFloat64:
	default:
		return fmt.Errorf("%q: %w", c.Output.Precision, ErrBadPrecision)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// ToOptions converts the evaluation section into stats options.
// The config must be valid.
func (c *Config) ToOptions() []stats.Option {
	return []stats.Option{
		stats.WithSumMaxIters(c.Evaluation.SumMaxIters),
		stats.WithFractionMaxIters(c.Evaluation.FractionMaxIters),
	}
}

// Logging converts the log section into a logger configuration.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Development = c.Log.Development

	return lc
}
