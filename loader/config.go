package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the loader's file-based configuration.
type Config struct {
	// SearchPaths are consulted before the built-in system paths.
	SearchPaths []string `yaml:"searchPaths"`
	// Namespaces to load, typically passed straight to LoadAll.
	Namespaces []Target `yaml:"namespaces"`
}

// Target names one namespace document to load.
type Target struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML config: %w", err)
	}
	return &cfg, nil
}
