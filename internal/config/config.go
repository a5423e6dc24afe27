// Package config loads optional CLI default settings for the tsg command
// from a YAML file, the way the configuration loaders elsewhere in the
// retrieved pack load their settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults that flags may override. Flags always win
// over file config, matching the teacher CLI's flag-first style.
type Config struct {
	// RevisitCap is the default traversal revisit cap (§spec.md 9,
	// "Traversal revisit cap"). Zero means "unset"; DefaultConfig fills
	// in the documented default of 2.
	RevisitCap int `yaml:"revisit_cap"`

	// OutputFormat holds a default emitter name: one of "dot", "gtf",
	// "vcf", "fasta", "json". It is loaded from the file, but no
	// subcommand of cmd/tsg reads it.
	OutputFormat string `yaml:"output_format"`

	// Quiet and Verbose set the default log/slog level when neither
	// -q/--quiet nor -v/--verbose is given on the command line.
	Quiet   bool `yaml:"quiet"`
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in CLI defaults.
func DefaultConfig() *Config {
	return &Config{
		RevisitCap:   2,
		OutputFormat: "json",
	}
}

// Load reads the YAML configuration file at path, overlaying it onto
// DefaultConfig. A missing file is not an error: the defaults are
// returned unchanged, since --config is optional.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if cfg.RevisitCap < 0 {
		return nil, fmt.Errorf("config: %q: revisit_cap must be >= 0, got %d", path, cfg.RevisitCap)
	}
	return cfg, nil
}
