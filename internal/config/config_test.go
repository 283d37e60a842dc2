package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagekit/internal/pagination"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, pagination.DefaultPageSize, cfg.Defaults.PageSize)
	assert.Equal(t, pagination.DefaultSiblings, cfg.Defaults.Siblings)
	assert.Equal(t, pagination.DefaultBoundaries, cfg.Defaults.Boundaries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
defaults:
  page_size: 50
  siblings: 2
  boundaries: 2
logging:
  level: debug
output:
  default_format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Defaults.PageSize)
	assert.Equal(t, 2, cfg.Defaults.Siblings)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, pagination.DefaultPageSize, cfg.Defaults.PageSize)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "defaults: [not, a, map")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: info
`)
	t.Setenv(EnvLogLevel, "trace")
	t.Setenv(EnvOutputFormat, "yaml")
	t.Setenv(EnvPageSize, "33")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	assert.Equal(t, 33, cfg.Defaults.PageSize)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero page size", content: "defaults:\n  page_size: 0\n  siblings: 1\n"},
		{name: "negative siblings", content: "defaults:\n  siblings: -1\n"},
		{name: "bad output format", content: "output:\n  default_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
