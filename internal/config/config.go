// Package config loads the server's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration
type Config struct {
	Port         int    `yaml:"port"`
	MetricsPort  int    `yaml:"metrics_port"`
	DatabasePath string `yaml:"database_path"`
	AuthSecret   string `yaml:"auth_secret"`
	// WasteReasons overrides the built-in waste taxonomy: the void
	// reasons that deduct stock. Empty keeps the defaults.
	WasteReasons []string `yaml:"waste_reasons"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		Port:         8080,
		MetricsPort:  9090,
		DatabasePath: "pos.db",
	}
}

// Load reads a YAML configuration file, filling unset fields with defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.MetricsPort == 0 {
		cfg.MetricsPort = 9090
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "pos.db"
	}
	return cfg, nil
}
