package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"url": "https://joes.example",
		"max_pages": 10,
		"max_depth": 1,
		"use_browser": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://joes.example", cfg.URL)
	assert.Equal(t, 10, cfg.MaxPages)
	assert.Equal(t, 1, cfg.MaxDepth)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := &Config{URL: "https://joes.example", MaxPages: 5}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadURL(t *testing.T) {
	cfg := &Config{URL: "not a url"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadBusinessID(t *testing.T) {
	cfg := &Config{BusinessID: "not-a-uuid"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MutuallyExclusiveTargets(t *testing.T) {
	existing := writeConfig(t, `{}`)
	cfg := &Config{
		BusinessID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Existing:   existing,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingExistingFile(t *testing.T) {
	cfg := &Config{Existing: filepath.Join(t.TempDir(), "nope.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBudget(t *testing.T) {
	cfg := &Config{
		MaxPages:        10,
		MaxDepth:        1,
		PageTimeoutSec:  5,
		TotalTimeoutSec: 60,
		RequestDelayMs:  250,
	}

	budget := cfg.Budget()
	assert.Equal(t, 10, budget.MaxPages)
	assert.Equal(t, 1, budget.MaxDepth)
	assert.Equal(t, 5*time.Second, budget.PageTimeout)
	assert.Equal(t, time.Minute, budget.TotalTimeout)
	assert.Equal(t, 250*time.Millisecond, budget.InterRequestDelay)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{URL: "https://joes.example"}
	defaults := Config{
		URL:         "https://ignored.example",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/importer",
		MaxPages:    20,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://joes.example", merged.URL, "explicit value wins")
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/importer", merged.DatabaseURL)
	assert.Equal(t, 20, merged.MaxPages)
}
