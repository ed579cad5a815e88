// Package config loads run settings for the seating binaries from YAML files
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seating/pkg/sims/seating"
)

// Config contains all seating run settings.
type Config struct {
	// Engine selects the implementation: "graph" (default) or "grid".
	Engine string `json:"engine" yaml:"engine"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Runs lists the policies to solve, in output order.
	Runs []RunConfig `json:"runs" yaml:"runs"`
}

// LoggingConfig configures the stderr logger.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// RunConfig describes one stabilization run.
type RunConfig struct {
	// Policy is "adjacent" or "visible".
	Policy string `json:"policy" yaml:"policy"`

	// Threshold overrides the policy default (4 adjacent, 5 visible) when
	// non-zero.
	Threshold int `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// Default returns the standard two-part configuration.
func Default() *Config {
	return &Config{
		Engine:  "graph",
		Logging: LoggingConfig{Level: "info"},
		Runs: []RunConfig{
			{Policy: "adjacent"},
			{Policy: "visible"},
		},
	}
}

// Load returns the defaults, overlaid by path when it is non-empty, then by
// environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileConfig
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.EngineKind(); err != nil {
		return err
	}
	if len(c.Runs) == 0 {
		return errors.New("at least one run is required")
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	validLevels := map[string]bool{"error": true, "warn": true, "warning": true, "info": true, "debug": true, "trace": true}
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level != "" && !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// EngineKind parses the configured engine name.
func (c *Config) EngineKind() (seating.EngineKind, error) {
	if c.Engine == "" {
		return seating.EngineGraph, nil
	}
	return seating.ParseEngine(c.Engine)
}

// Rules converts the configured runs into validated rules.
func (c *Config) Rules() ([]seating.Rule, error) {
	rules := make([]seating.Rule, 0, len(c.Runs))
	for i, run := range c.Runs {
		p, err := seating.ParsePolicy(run.Policy)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		r := seating.DefaultRule(p)
		if run.Threshold != 0 {
			if run.Threshold < 1 || run.Threshold > 8 {
				return nil, fmt.Errorf("run %d: got %d: %w", i+1, run.Threshold, seating.ErrThreshold)
			}
			r.Threshold = uint8(run.Threshold)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SEATING_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("SEATING_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SEATING_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			for i := range cfg.Runs {
				cfg.Runs[i].Threshold = n
			}
		}
	}
}
