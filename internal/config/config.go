// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"unitconv/internal/errors"
	"unitconv/internal/logging"
)

// Config is the main application configuration.
// Files are HCL (.hcl) or HCL-flavoured JSON (.json).
type Config struct {
	// Version is the configuration version
	Version string `json:"version" hcl:"version,optional"`

	// Precision is the default number of decimal places
	Precision *int `json:"precision" hcl:"precision,optional"`

	// Output contains output configuration
	Output *OutputConfig `json:"output" hcl:"output,block"`

	// Batch contains batch conversion configuration
	Batch *BatchConfig `json:"batch" hcl:"batch,block"`

	// Logging contains logging configuration
	Logging *logging.Config `json:"logging" hcl:"logging,block"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (text, json, yaml)
	Format string `json:"format" hcl:"format,optional"`

	// NoColor disables ANSI colors in text output
	NoColor bool `json:"no_color" hcl:"no_color,optional"`
}

// BatchConfig contains batch-related settings
type BatchConfig struct {
	// Workers is the number of concurrent conversions
	Workers int `json:"workers" hcl:"workers,optional"`
}

// Default returns a default configuration
func Default() *Config {
	precision := 2
	loggingConfig := logging.DefaultConfig()

	return &Config{
		Version:   "1.0",
		Precision: &precision,
		Output: &OutputConfig{
			Format:  "text",
			NoColor: false,
		},
		Batch: &BatchConfig{
			Workers: 4,
		},
		Logging: &loggingConfig,
	}
}

// DefaultPath returns $HOME/.unitconv.hcl
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".unitconv.hcl")
}

// DefaultJSONPath returns $HOME/.unitconv.json
func DefaultJSONPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".unitconv.json")
}

// Discover returns the first default config file that exists, preferring
// HCL over JSON. DefaultPath is returned when neither exists.
func Discover() string {
	for _, path := range []string{DefaultPath(), DefaultJSONPath()} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return DefaultPath()
}

// Load loads configuration from a file. Settings absent from the file keep
// their defaults; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot read config file", err).WithContext("path", path)
	}

	config := Default()
	if err := hclsimple.DecodeFile(path, nil, config); err != nil {
		return nil, errors.Config("invalid config file", err).WithContext("path", path)
	}

	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// fillDefaults restores blocks and fields that decoding left empty
func (c *Config) fillDefaults() {
	d := Default()
	if c.Precision == nil {
		c.Precision = d.Precision
	}
	if c.Output == nil {
		c.Output = d.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
	if c.Batch == nil {
		c.Batch = d.Batch
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = d.Batch.Workers
	}
	if c.Logging == nil {
		c.Logging = d.Logging
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > 14) {
		return errors.Newf(errors.TypeConfig, "precision must be between 0 and 14, got %d", *c.Precision)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return errors.Newf(errors.TypeConfig, "unknown output format %q", c.Output.Format)
	}
	if c.Batch.Workers < 0 {
		return errors.Newf(errors.TypeConfig, "batch workers must not be negative, got %d", c.Batch.Workers)
	}
	return nil
}

// Save saves configuration as JSON
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
