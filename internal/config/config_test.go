package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultPageSize, cfg.Table.DefaultPageSize)
	assert.Equal(t, DefaultPageSizes, cfg.Table.PageSizes)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: debug
table:
  default_page_size: 50
  page_sizes: [50, 100]
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
		assert.Equal(t, 50, cfg.Table.DefaultPageSize)
		assert.Equal(t, []int{50, 100}, cfg.Table.PageSizes)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "table: [not a mapping")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: warn\n")
		t.Setenv(EnvLogLevel, "trace")
		t.Setenv(EnvLogFormat, "json")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "trace", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("config path env respected", func(t *testing.T) {
		path := writeConfig(t, "table:\n  default_page_size: 10\n")
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Table.DefaultPageSize)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Table.PageSizes = []int{0, 25} },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "negative page size",
			mutate:  func(c *Config) { c.Table.PageSizes = []int{-1} },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "default size missing from list",
			mutate:  func(c *Config) { c.Table.DefaultPageSize = 33 },
			wantErr: ErrDefaultNotListed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
