// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"

	"eurocalc/internal/errors"
	"eurocalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains document output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains document output settings
type OutputConfig struct {
	// Decimals is the default decimal precision for rendered values
	Decimals int `json:"decimals"`

	// Path is the default output path for generated documents
	Path string `json:"path"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Version: "1",
		Output: OutputConfig{
			Decimals: 2,
			Path:     "report.tex",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.TypeConfig, err, "cannot read config file %s", path)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(errors.TypeConfig, err, "cannot parse config file %s", path)
	}
	return cfg, nil
}

var current = Default()

// Get returns the active configuration
func Get() Config {
	return current
}

// Set replaces the active configuration
func Set(cfg Config) {
	current = cfg
	_ = logging.Initialize(cfg.Logging)
}
