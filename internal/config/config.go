// Package config provides configuration management for linctl. It loads
// configuration from environment variables with an optional YAML config
// file underneath; flags handled by the CLI layer take precedence over
// both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for linctl.
type Config struct {
	// APIToken authenticates against the Linear API.
	APIToken string

	// Endpoint is the GraphQL endpoint. Empty means the production API;
	// overriding it is only useful for testing.
	Endpoint string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	APIToken string `yaml:"api_token"`
	Endpoint string `yaml:"endpoint"`
	Timeout  int    `yaml:"timeout"`
}

// New creates a Config from the environment and the optional config file.
// Precedence: environment > file > default.
func New() (*Config, error) {
	cfg := &Config{Timeout: 30 * time.Second}

	if err := loadFile(cfg); err != nil {
		return nil, err
	}

	if token := os.Getenv("LINEAR_API_KEY"); token != "" {
		cfg.APIToken = token
	}
	if endpoint := os.Getenv("LINCTL_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if timeoutStr := os.Getenv("LINCTL_TIMEOUT"); timeoutStr != "" {
		timeoutSecs, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LINCTL_TIMEOUT: %w", err)
		}
		if timeoutSecs <= 0 {
			return nil, fmt.Errorf("LINCTL_TIMEOUT must be positive, got: %d", timeoutSecs)
		}
		cfg.Timeout = time.Duration(timeoutSecs) * time.Second
	}

	return cfg, nil
}

// Path returns the config file location: LINCTL_CONFIG when set, otherwise
// ~/.config/linctl/config.yaml.
func Path() (string, error) {
	if path := os.Getenv("LINCTL_CONFIG"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "linctl", "config.yaml"), nil
}

func loadFile(cfg *Config) error {
	path, err := Path()
	if err != nil {
		// No home directory; env-only configuration still works.
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if fc.APIToken != "" {
		cfg.APIToken = fc.APIToken
	}
	if fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if fc.Timeout < 0 {
		return fmt.Errorf("invalid config file %s: timeout must be positive, got: %d", path, fc.Timeout)
	}
	if fc.Timeout > 0 {
		cfg.Timeout = time.Duration(fc.Timeout) * time.Second
	}
	return nil
}
