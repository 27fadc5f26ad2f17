package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config files or
// .env leak in from the working tree.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(original) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://boardgamegeek.com/xmlapi2", cfg.Catalog.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, 3, cfg.Catalog.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.Catalog.RetryDelay())
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "en", cfg.Locale)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.RefreshCron)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yamlConfig := `
catalog:
  base_url: "http://localhost:9999/api"
  timeout_seconds: 5
  max_attempts: 2
  retry_delay_seconds: 1
data:
  dir: "playdata"
locale: "ja"
refresh_cron: "0 3 * * *"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "meeple.yaml"), []byte(yamlConfig), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, 2, cfg.Catalog.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Catalog.RetryDelay())
	assert.Equal(t, "playdata", cfg.Data.Dir)
	assert.Equal(t, "ja", cfg.Locale)
	assert.Equal(t, "0 3 * * *", cfg.RefreshCron)
}

func TestLoadConfigFromTOML(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	tomlConfig := `
locale = "ja"

[catalog]
timeout_seconds = 7

[data]
dir = "tomldata"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "meeple.toml"), []byte(tomlConfig), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, "tomldata", cfg.Data.Dir)
	assert.Equal(t, "ja", cfg.Locale)
	// Fields the file leaves out still get defaults.
	assert.Equal(t, 3, cfg.Catalog.MaxAttempts)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	chdirTemp(t)

	t.Setenv("MEEPLE_CATALOG_TIMEOUT", "30")
	t.Setenv("MEEPLE_DATA_DIR", "envdata")
	t.Setenv("MEEPLE_LOCALE", "ja")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, "envdata", cfg.Data.Dir)
	assert.Equal(t, "ja", cfg.Locale)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name        string
		modifyFunc  func(*Config)
		expectError bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero timeout", func(c *Config) { c.Catalog.TimeoutSeconds = 0 }, true},
		{"negative attempts", func(c *Config) { c.Catalog.MaxAttempts = -1 }, true},
		{"negative retry delay", func(c *Config) { c.Catalog.RetryDelaySeconds = -1 }, true},
		{"zero retry delay is allowed", func(c *Config) { c.Catalog.RetryDelaySeconds = 0 }, false},
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }, true},
		{"invalid locale", func(c *Config) { c.Locale = "fr" }, true},
		{"ja locale is allowed", func(c *Config) { c.Locale = "ja" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modifyFunc(cfg)

			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Setenv("TEST_STRING", "test_value")
	if result := getEnvString("TEST_STRING", "default"); result != "test_value" {
		t.Errorf("Expected 'test_value', got %s", result)
	}
	if result := getEnvString("NONEXISTENT", "default"); result != "default" {
		t.Errorf("Expected 'default', got %s", result)
	}

	t.Setenv("TEST_INT", "42")
	if result := getEnvInt("TEST_INT", 0); result != 42 {
		t.Errorf("Expected 42, got %d", result)
	}
	if result := getEnvInt("NONEXISTENT", 10); result != 10 {
		t.Errorf("Expected 10, got %d", result)
	}

	t.Setenv("TEST_INT_BAD", "not-a-number")
	if result := getEnvInt("TEST_INT_BAD", 10); result != 10 {
		t.Errorf("Expected 10, got %d", result)
	}
}
