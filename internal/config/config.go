package config

import "fmt"

// Default generation models per backend, used when neither the config
// file nor the -m flag names one.
const (
	DefaultModel       = "claude-haiku-4-5-20251001"
	DefaultGeminiModel = "gemini-2.5-flash"
)

type Config struct {
	Model    string        `yaml:"model"`
	Backend  string        `yaml:"backend"`
	Language string        `yaml:"language"`
	Limits   LimitsConfig  `yaml:"limits"`
	Gemini   GeminiConfig  `yaml:"gemini"`
	Logging  LoggingConfig `yaml:"logging"`
	Paths    PathsConfig   `yaml:"paths"`
}

type LimitsConfig struct {
	// MaxChars caps the transcript length handed to the generator.
	MaxChars int `yaml:"max_chars"`
	// MinChars is the minimum cleaned-transcript length considered usable.
	MinChars int `yaml:"min_chars"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PathsConfig struct {
	// Temp is the parent directory for per-run subtitle download dirs.
	// Empty means the system default temp directory.
	Temp string `yaml:"temp"`
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "", "claude", "gemini":
	default:
		return fmt.Errorf("backend must be claude or gemini, got %q", c.Backend)
	}

	if c.Backend == "" {
		c.Backend = "claude"
	}
	if c.Model == "" {
		if c.Backend == "gemini" {
			c.Model = DefaultGeminiModel
		} else {
			c.Model = DefaultModel
		}
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.Limits.MaxChars == 0 {
		c.Limits.MaxChars = 100_000
	}
	if c.Limits.MinChars == 0 {
		c.Limits.MinChars = 50
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Limits.MinChars > c.Limits.MaxChars {
		return fmt.Errorf("limits.min_chars (%d) exceeds limits.max_chars (%d)", c.Limits.MinChars, c.Limits.MaxChars)
	}

	return nil
}
