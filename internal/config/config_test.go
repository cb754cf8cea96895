package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid config with defaults", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8000
api:
  base_url: "http://localhost:4567"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.GetServerAddress())
		assert.Equal(t, "http://localhost:4567", cfg.API.BaseURL)
		assert.Equal(t, 15, cfg.API.TimeoutSeconds)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("Env overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://backend:4567")
		t.Setenv("LOG_LEVEL", "debug")
		path := writeConfig(t, `
server:
  port: 8000
api:
  base_url: "http://localhost:4567"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://backend:4567", cfg.API.BaseURL)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("Missing base URL", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8000
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "API base URL is required")
	})

	t.Run("Invalid port", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 99999
api:
  base_url: "http://localhost:4567"
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid server port")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
