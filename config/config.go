// Package config loads the model-run configuration: input file locations,
// output directory and run options. Loaded with defaults first, then the
// YAML file, then validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidFilePath = errors.New("config: file path does not exist")
	ErrInvalidOption   = errors.New("config: invalid option")
)

// Config holds a full model-run specification.
type Config struct {
	Inputs  Inputs  `yaml:"inputs"`
	Outputs Outputs `yaml:"outputs"`
	Options Options `yaml:"options"`
}

// Inputs names the three model input files.
type Inputs struct {
	ParametersFile string `yaml:"parameters_file"`
	TimeseriesFile string `yaml:"timeseries_file"`
	TwiFile        string `yaml:"twi_file"`
}

// Outputs names where results are written.
type Outputs struct {
	OutputDir string `yaml:"output_dir"` // default: "output"
}

// Options selects the preprocessing and reporting behavior.
type Options struct {
	PET      string `yaml:"pet"`      // "hamon" or "makkink", default: "hamon"
	Snowmelt bool   `yaml:"snowmelt"` // default: true
	Plots    bool   `yaml:"plots"`    // default: true
	Report   bool   `yaml:"report"`   // default: true
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Outputs: Outputs{OutputDir: "output"},
		Options: Options{PET: "hamon", Snowmelt: true, Plots: true, Report: true},
	}
}

// Load reads, decodes and validates a configuration file.
func Load(fp string) (*Config, error) {
	cfg := Defaults()

	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load %s: %w", fp, err)
	}
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("config.Load %s: %w", fp, err)
	}
	return &cfg, nil
}

func (cfg *Config) check() error {
	for _, fp := range []string{cfg.Inputs.ParametersFile, cfg.Inputs.TimeseriesFile, cfg.Inputs.TwiFile} {
		if fp == "" {
			return fmt.Errorf("%w: an input file is unset", ErrInvalidFilePath)
		}
		if _, err := os.Stat(fp); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFilePath, fp)
		}
	}
	switch cfg.Options.PET {
	case "hamon", "makkink":
	default:
		return fmt.Errorf("%w: pet = %q (valid: hamon, makkink)", ErrInvalidOption, cfg.Options.PET)
	}
	return nil
}
