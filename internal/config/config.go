// Package config loads and validates the engine configuration:
// required header lines, per-rule enablement and severity overrides,
// and per-glob rule exclusions.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the configuration is looked up when no -config
// flag is given.
const DefaultPath = ".csconform.yml"

// Error is a fatal configuration problem. The run aborts before any
// walk starts when one is reported.
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Reason)
}

// RuleConfig overrides one rule's defaults.
type RuleConfig struct {
	Enabled  *bool  `yaml:"enabled"`
	Severity string `yaml:"severity"`
}

// Exclusion suppresses a rule (or "*") for paths matching any of the
// gitignore-style globs.
type Exclusion struct {
	Rule  string   `yaml:"rule"`
	Paths []string `yaml:"paths"`
}

// Config is the full engine configuration.
type Config struct {
	// Header lists the exact comment lines every file must open with.
	Header  []string              `yaml:"header"`
	Rules   map[string]RuleConfig `yaml:"rules"`
	Exclude []Exclusion           `yaml:"exclude"`
	// Workers bounds walk parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Header: []string{
			"// Copyright (c) Fennwick. All rights reserved.",
			"// Licensed under the MIT license.",
		},
	}
}

// Load reads a YAML configuration file. A missing file at the default
// path falls back to Default(); a missing file at an explicit path is
// an Error.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, &Error{Path: path, Reason: err.Error()}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &Error{Path: path, Reason: err.Error()}
	}
	if cfg.Workers < 0 {
		return nil, &Error{Path: path, Reason: fmt.Sprintf("workers must be >= 0, got %d", cfg.Workers)}
	}
	return cfg, nil
}

// Validate checks the configuration against the set of known rule ids
// and severity names. knownRule reports whether an id is registered;
// knownSeverity reports whether a severity string parses.
func (c *Config) Validate(knownRule func(string) bool, knownSeverity func(string) bool) error {
	for id, rc := range c.Rules {
		if !knownRule(id) {
			return &Error{Reason: fmt.Sprintf("unknown rule id %q", id)}
		}
		if rc.Severity != "" && !knownSeverity(rc.Severity) {
			return &Error{Reason: fmt.Sprintf("rule %s: unknown severity %q", id, rc.Severity)}
		}
	}
	for _, ex := range c.Exclude {
		if ex.Rule != "*" && !knownRule(ex.Rule) {
			return &Error{Reason: fmt.Sprintf("exclusion names unknown rule id %q", ex.Rule)}
		}
		if len(ex.Paths) == 0 {
			return &Error{Reason: fmt.Sprintf("exclusion for rule %s has no paths", ex.Rule)}
		}
	}
	return nil
}

// Enabled resolves a rule's enablement, using the rule's default when
// the configuration is silent.
func (c *Config) Enabled(id string, dflt bool) bool {
	if rc, ok := c.Rules[id]; ok && rc.Enabled != nil {
		return *rc.Enabled
	}
	return dflt
}

// SeverityOverride returns the configured severity string for a rule,
// or "" when none is set.
func (c *Config) SeverityOverride(id string) string {
	if rc, ok := c.Rules[id]; ok {
		return rc.Severity
	}
	return ""
}
