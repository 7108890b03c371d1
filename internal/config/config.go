// Package config loads gridkit settings from an optional YAML file with
// environment overrides. Missing files are not errors: every field has a
// default so the CLI works out of the box.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file or individual fields are absent.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultPageSize  = 25
)

// DefaultPageSizes is the default page-size allow-list for list views.
//
//nolint:gochecknoglobals // Shared default, never mutated.
var DefaultPageSizes = []int{10, 25, 50, 100}

// Environment variables honored by Load.
const (
	EnvConfigPath = "GRIDKIT_CONFIG"
	EnvLogLevel   = "GRIDKIT_LOG_LEVEL"
	EnvLogFormat  = "GRIDKIT_LOG_FORMAT"
)

// Validation errors.
var (
	ErrInvalidPageSize  = errors.New("page sizes must be positive")
	ErrDefaultNotListed = errors.New("default page size must be in the page-size list")
)

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TableConfig controls list-view pagination defaults.
type TableConfig struct {
	// DefaultPageSize is the page size new tables start with.
	DefaultPageSize int `yaml:"default_page_size"`

	// PageSizes is the allow-list of selectable page sizes.
	PageSizes []int `yaml:"page_sizes"`
}

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Table   TableConfig   `yaml:"table"`
}

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Table: TableConfig{
			DefaultPageSize: DefaultPageSize,
			PageSizes:       slices.Clone(DefaultPageSizes),
		},
	}
}

// Load builds the configuration: defaults, then the YAML file (explicit
// path, GRIDKIT_CONFIG, or ~/.gridkit/config.yaml — first match wins),
// then environment overrides. A missing file is silently skipped; a file
// that exists but cannot be parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved := resolvePath(path)
	if resolved != "" {
		data, err := os.ReadFile(resolved)
		switch {
		case err == nil:
			if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
				return nil, fmt.Errorf("parsing config %s: %w", resolved, unmarshalErr)
			}
		case os.IsNotExist(err):
			// Defaults only.
		default:
			return nil, fmt.Errorf("reading config %s: %w", resolved, err)
		}
	}

	applyEnv(cfg)
	fillDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants an interactive table depends on: every page
// size positive and the default size present in the allow-list.
func (c *Config) Validate() error {
	for _, size := range c.Table.PageSizes {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
		}
	}
	if !slices.Contains(c.Table.PageSizes, c.Table.DefaultPageSize) {
		return fmt.Errorf("%w: %d not in %v",
			ErrDefaultNotListed, c.Table.DefaultPageSize, c.Table.PageSizes)
	}
	return nil
}

// resolvePath picks the config file location.
func resolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridkit", "config.yaml")
}

// applyEnv layers environment overrides on top of file values.
func applyEnv(cfg *Config) {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Logging.Format = format
	}
}

// fillDefaults backfills fields the YAML file zeroed out.
func fillDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Table.DefaultPageSize == 0 {
		cfg.Table.DefaultPageSize = DefaultPageSize
	}
	if len(cfg.Table.PageSizes) == 0 {
		cfg.Table.PageSizes = slices.Clone(DefaultPageSizes)
	}
}
