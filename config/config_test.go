package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "UTC", cfg.Timeline.Timezone)
	assert.Empty(t, cfg.Timeline.CatalogPath)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMin)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
environment:
  name: production
http_server:
  port: 9090
  mode: release
logger:
  level: info
  encoding: json
timeline:
  timezone: Asia/Ho_Chi_Minh
  catalog_path: ./catalog.yaml
cors:
  allowed_origins:
    - https://plan.example.com
    - https://admin.example.com
rate_limit:
  requests_per_min: 30
`)

	cfg, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment.Name)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, "json", cfg.Logger.Encoding)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Timeline.Timezone)
	assert.Equal(t, "./catalog.yaml", cfg.Timeline.CatalogPath)
	assert.Equal(t, []string{"https://plan.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMin)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TIMELINE_TIMEZONE", "Europe/Paris")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := load(writeConfig(t, "timeline:\n  timezone: UTC\n"))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", cfg.Timeline.Timezone)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadInvalid(t *testing.T) {
	_, err := load(writeConfig(t, "http_server:\n  port: -1\n"))
	assert.Error(t, err)

	_, err = load(writeConfig(t, "rate_limit:\n  requests_per_min: -5\n"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b"))
	assert.Equal(t, []string{"a", "b"}, splitList([]any{"a", " b "}))
	assert.Nil(t, splitList(nil))
}
