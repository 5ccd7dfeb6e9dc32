package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the mindbridge configuration
type Config struct {
	// XMLVersion is the version attribute written on generated <map> elements
	XMLVersion string `yaml:"xml_version"`
	// FoldDepth folds generated XML nodes at or beyond this depth (0 = never)
	FoldDepth int `yaml:"fold_depth"`
	// EmitIDs adds sequential ID attributes to generated XML nodes
	EmitIDs bool `yaml:"emit_ids"`
	// LogFile receives a copy of the log output when set
	LogFile string `yaml:"log_file,omitempty"`
	// LogLevel filters log output: debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		XMLVersion: "freeplane 1.9.13",
		FoldDepth:  0,
		EmitIDs:    false,
		LogFile:    "",
		LogLevel:   "info",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "mindbridge", "config.yaml")
	}
	return filepath.Join(home, ".config", "mindbridge", "config.yaml")
}

// Load reads configuration from the config directory. A missing file
// yields the defaults, not an error.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.XMLVersion == "" {
		return fmt.Errorf("xml_version cannot be empty")
	}
	if c.FoldDepth < 0 {
		return fmt.Errorf("fold_depth cannot be negative")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}
