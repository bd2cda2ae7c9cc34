package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.ChromeProfile)
	assert.Empty(t, cfg.Domains)
	assert.Equal(t, "cookies.txt", cfg.OutputPath)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
chrome_profile: "/home/me/.config/google-chrome/Default/Cookies"
domains:
  - "youtube.com"
  - "instagram.com"
output_path: "/tmp/out.txt"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/home/me/.config/google-chrome/Default/Cookies", cfg.ChromeProfile)
	assert.Equal(t, []string{"youtube.com", "instagram.com"}, cfg.Domains)
	assert.Equal(t, "/tmp/out.txt", cfg.OutputPath)
}

func TestLoadPartialYAMLMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
chrome_profile: "/path/to/Cookies"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/path/to/Cookies", cfg.ChromeProfile)
	assert.Empty(t, cfg.Domains)
	assert.Equal(t, "cookies.txt", cfg.OutputPath)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	err := os.WriteFile(cfgPath, []byte(":::not valid yaml{{{"), 0644)
	require.NoError(t, err)

	_, err = Load(cfgPath)
	assert.Error(t, err)
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := expandPath("~/.cookie_exporter/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cookie_exporter", "config.yaml"), expanded)
}

func TestExpandPathAbsoluteUnchanged(t *testing.T) {
	expanded, err := expandPath("/etc/cookie_exporter.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/cookie_exporter.yaml", expanded)
}
