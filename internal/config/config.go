package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where LoadDefault looks when no --config override
// is given.
const DefaultConfigPath = "~/.cookie_exporter/config.yaml"

// Config holds the three values the export pipeline consumes.
type Config struct {
	ChromeProfile string   `yaml:"chrome_profile"`
	Domains       []string `yaml:"domains"`
	OutputPath    string   `yaml:"output_path"`
}

// Load reads a YAML config file at path and merges it over defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads the config from DefaultConfigPath. A missing file is
// an error: the config file is only consulted when the user asked for it,
// so silently falling back to defaults would hide a misplaced file.
func LoadDefault() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
