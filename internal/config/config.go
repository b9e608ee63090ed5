// Package config loads holdem-odds settings from an optional HCL file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variables that override file settings.
const (
	// EnvSeed seeds the random source; 0 means unseeded.
	EnvSeed = "HOLDEMEVAL_SEED"

	// EnvDuration is the Monte Carlo time budget, e.g. "500ms".
	EnvDuration = "HOLDEMEVAL_DURATION"

	// EnvOpponents is the default number of random opponents.
	EnvOpponents = "HOLDEMEVAL_OPPONENTS"
)

// MaxOpponents is the most random opponents a full board leaves room for.
const MaxOpponents = 22

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	colorModes  = []string{"auto", "always", "never"}
	errNoConfig = errors.New("config is nil")
)

// Config represents the complete holdem-odds configuration
type Config struct {
	Analysis AnalysisSettings
	Random   RandomSettings
	Output   OutputSettings
}

// AnalysisSettings controls the Monte Carlo estimators.
type AnalysisSettings struct {
	Duration  string `hcl:"duration,optional"`
	Opponents int    `hcl:"opponents,optional"`
	MaxTrials int    `hcl:"max_trials,optional"`
}

// RandomSettings controls the random source.
type RandomSettings struct {
	Seed int64 `hcl:"seed,optional"`
}

// OutputSettings controls logging and terminal output.
type OutputSettings struct {
	LogLevel string `hcl:"log_level,optional"`
	Color    string `hcl:"color,optional"`
}

// fileConfig mirrors Config with every block optional.
type fileConfig struct {
	Analysis *AnalysisSettings `hcl:"analysis,block"`
	Random   *RandomSettings   `hcl:"random,block"`
	Output   *OutputSettings   `hcl:"output,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Analysis: AnalysisSettings{
			Duration:  "250ms",
			Opponents: 1,
			MaxTrials: 0,
		},
		Output: OutputSettings{
			LogLevel: "warn",
			Color:    "auto",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse reads configuration from HCL source; filename is used in messages.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	defaults := Default()

	// Apply defaults for missing values
	if a := fc.Analysis; a != nil {
		config.Analysis = *a
		if config.Analysis.Duration == "" {
			config.Analysis.Duration = defaults.Analysis.Duration
		}
		if config.Analysis.Opponents == 0 {
			config.Analysis.Opponents = defaults.Analysis.Opponents
		}
	}
	if r := fc.Random; r != nil {
		config.Random = *r
	}
	if o := fc.Output; o != nil {
		config.Output = *o
		if config.Output.LogLevel == "" {
			config.Output.LogLevel = defaults.Output.LogLevel
		}
		if config.Output.Color == "" {
			config.Output.Color = defaults.Output.Color
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides settings from the environment, read through lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if c == nil {
		return errNoConfig
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Random.Seed = seed
	}
	if v, ok := lookup(EnvDuration); ok && v != "" {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvDuration, err)
		}
		c.Analysis.Duration = v
	}
	if v, ok := lookup(EnvOpponents); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvOpponents, err)
		}
		c.Analysis.Opponents = n
	}
	return c.Validate()
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errNoConfig
	}
	d, err := time.ParseDuration(c.Analysis.Duration)
	if err != nil {
		return fmt.Errorf("analysis.duration: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("analysis.duration must be positive, got %s", d)
	}
	if c.Analysis.Opponents < 1 || c.Analysis.Opponents > MaxOpponents {
		return fmt.Errorf("analysis.opponents must be between 1 and %d, got %d", MaxOpponents, c.Analysis.Opponents)
	}
	if c.Analysis.MaxTrials < 0 {
		return fmt.Errorf("analysis.max_trials must not be negative, got %d", c.Analysis.MaxTrials)
	}
	if !slices.Contains(logLevels, c.Output.LogLevel) {
		return fmt.Errorf("output.log_level must be one of %v, got %q", logLevels, c.Output.LogLevel)
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("output.color must be one of %v, got %q", colorModes, c.Output.Color)
	}
	return nil
}

// Budget returns the analysis duration. Call Validate first.
func (a AnalysisSettings) Budget() time.Duration {
	d, _ := time.ParseDuration(a.Duration)
	return d
}
