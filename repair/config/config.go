// Package config loads and validates the YAML run configuration used by
// cmd/repair.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Alphabet selects how an input file is decoded into terminal symbols.
type Alphabet string

const (
	AlphabetByte Alphabet = "byte"
	AlphabetRune Alphabet = "rune"
)

// Config is the top-level run configuration for cmd/repair.
type Config struct {
	Alphabet Alphabet    `yaml:"alphabet"`
	Logging  LogConfig   `yaml:"logging"`
	DebugCSV DebugConfig `yaml:"debug_csv"`
}

// LogConfig controls repair/applog's logger construction.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DebugConfig controls whether and where corpus.WriteDebugCSV writes its
// rule-list dump.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration cmd/repair uses when no config file
// is supplied.
func Default() Config {
	return Config{
		Alphabet: AlphabetByte,
		Logging:  LogConfig{Level: "info"},
	}
}

// Load reads and validates a YAML configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every sub-configuration for internal consistency.
func (c Config) Validate() error {
	if err := c.Alphabet.Validate(); err != nil {
		return fmt.Errorf("invalid alphabet: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}
	if err := c.DebugCSV.Validate(); err != nil {
		return fmt.Errorf("invalid debug_csv configuration: %w", err)
	}
	return nil
}

func (a Alphabet) Validate() error {
	switch a {
	case AlphabetByte, AlphabetRune:
		return nil
	default:
		return fmt.Errorf("alphabet must be %q or %q (got %q)", AlphabetByte, AlphabetRune, a)
	}
}

func (l LogConfig) Validate() error {
	if l.Level == "" {
		return nil
	}
	for _, level := range []string{"debug", "info", "warn", "error"} {
		if l.Level == level {
			return nil
		}
	}
	return fmt.Errorf("log level must be one of debug/info/warn/error (got %q)", l.Level)
}

func (d DebugConfig) Validate() error {
	if d.Enabled && d.Path == "" {
		return fmt.Errorf("debug_csv.path cannot be empty when debug_csv.enabled is true")
	}
	return nil
}
