// Package config loads pagekit configuration from YAML with environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"pagekit/internal/logging"
	"pagekit/internal/pagination"
)

// Environment variable overrides. Each takes precedence over the config file.
const (
	EnvLogLevel     = "PAGEKIT_LOG_LEVEL"
	EnvLogFile      = "PAGEKIT_LOG_FILE"
	EnvOutputFormat = "PAGEKIT_OUTPUT"
	EnvPageSize     = "PAGEKIT_PAGE_SIZE"
)

// configDirName is the per-user directory holding config.yaml.
const configDirName = ".pagekit"

// DefaultsConfig holds default pagination display parameters applied when
// the corresponding CLI flags are not set.
type DefaultsConfig struct {
	PageSize   int `yaml:"page_size"`
	Siblings   int `yaml:"siblings"`
	Boundaries int `yaml:"boundaries"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ToLoggingConfig converts to the logging package's config type.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{Level: l.Level, Format: l.Format, File: l.File}
}

// OutputConfig holds output settings.
type OutputConfig struct {
	// DefaultFormat is the output format used when --output is not given:
	// table, json, or yaml.
	DefaultFormat string `yaml:"default_format"`
}

// Config is the root configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// New returns a Config populated with built-in defaults.
func New() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			PageSize:   pagination.DefaultPageSize,
			Siblings:   pagination.DefaultSiblings,
			Boundaries: pagination.DefaultBoundaries,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
	}
}

// Load builds the effective configuration: built-in defaults, overlaid with
// the YAML file at path (or the default user config when path is empty),
// then environment variable overrides. A missing file is not an error
// unless it was requested explicitly; a malformed one always is.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the default user config file path, or "" when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// mergeFile overlays the YAML file onto cfg. Sections absent from the file
// keep their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= pagination.MinPageSize {
			c.Defaults.PageSize = n
		}
	}
}

func (c *Config) validate() error {
	if c.Defaults.PageSize < pagination.MinPageSize {
		return fmt.Errorf("%w: defaults.page_size %d", pagination.ErrInvalidPageSize, c.Defaults.PageSize)
	}
	if c.Defaults.Siblings < 0 || c.Defaults.Boundaries < 0 {
		return fmt.Errorf("%w: defaults.siblings=%d defaults.boundaries=%d",
			pagination.ErrNegativeCount, c.Defaults.Siblings, c.Defaults.Boundaries)
	}
	switch c.Output.DefaultFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output.default_format: %q", c.Output.DefaultFormat)
	}
	return nil
}
