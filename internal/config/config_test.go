package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("LINCTL_CONFIG", path)
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINEAR_API_KEY", "")
	t.Setenv("LINCTL_ENDPOINT", "")
	t.Setenv("LINCTL_TIMEOUT", "")
	t.Setenv("LINCTL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestNewDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIToken)
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestNewFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINEAR_API_KEY", "lin_api_env")
	t.Setenv("LINCTL_ENDPOINT", "http://localhost:8080/graphql")
	t.Setenv("LINCTL_TIMEOUT", "60")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "lin_api_env", cfg.APIToken)
	assert.Equal(t, "http://localhost:8080/graphql", cfg.Endpoint)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestNewFromFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "api_token: lin_api_file\nendpoint: http://file.example/graphql\ntimeout: 45\n")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "lin_api_file", cfg.APIToken)
	assert.Equal(t, "http://file.example/graphql", cfg.Endpoint)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "api_token: lin_api_file\nendpoint: http://file.example/graphql\n")
	t.Setenv("LINEAR_API_KEY", "lin_api_env")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "lin_api_env", cfg.APIToken, "the environment wins over the file")
	assert.Equal(t, "http://file.example/graphql", cfg.Endpoint, "file values survive where the environment is silent")
}

func TestInvalidTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
	}{
		{"not a number", "soon"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("LINCTL_TIMEOUT", tt.timeout)

			_, err := New()
			assert.Error(t, err)
		})
	}
}

func TestInvalidConfigFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "api_token: [not, a, string\n")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestNegativeFileTimeout(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "timeout: -10\n")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout must be positive")
}

func TestPathPrefersEnvOverride(t *testing.T) {
	t.Setenv("LINCTL_CONFIG", "/tmp/custom.yaml")
	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestPathDefaultsToHome(t *testing.T) {
	t.Setenv("LINCTL_CONFIG", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "linctl", "config.yaml"), path)
}
