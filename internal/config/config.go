package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CatalogConfig configures the remote catalog client.
type CatalogConfig struct {
	BaseURL           string `yaml:"base_url" toml:"base_url" env:"MEEPLE_CATALOG_URL"`
	TimeoutSeconds    int    `yaml:"timeout_seconds" toml:"timeout_seconds" env:"MEEPLE_CATALOG_TIMEOUT"`
	MaxAttempts       int    `yaml:"max_attempts" toml:"max_attempts" env:"MEEPLE_CATALOG_ATTEMPTS"`
	RetryDelaySeconds int    `yaml:"retry_delay_seconds" toml:"retry_delay_seconds" env:"MEEPLE_CATALOG_RETRY_DELAY"`
}

// DataConfig configures the flat-file store.
type DataConfig struct {
	Dir string `yaml:"dir" toml:"dir" env:"MEEPLE_DATA_DIR"`
}

// DatabaseConfig configures the optional catalog cache database.
type DatabaseConfig struct {
	URL string `yaml:"url" toml:"url" env:"MEEPLE_DATABASE_URL"`
}

// Config is the complete application configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog" toml:"catalog"`
	Data     DataConfig     `yaml:"data" toml:"data"`
	Database DatabaseConfig `yaml:"database" toml:"database"`
	// RefreshCron is a cron expression for periodic catalog refresh; empty
	// disables scheduling.
	RefreshCron string `yaml:"refresh_cron" toml:"refresh_cron" env:"MEEPLE_REFRESH_CRON"`
	// Locale selects display names; "ja" or "en".
	Locale string `yaml:"locale" toml:"locale" env:"MEEPLE_LOCALE"`
}

// Timeout returns the per-request catalog timeout.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the fixed delay between "still processing" attempts.
func (c CatalogConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// LoadConfig loads the configuration in order of preference:
//  1. YAML file (config/meeple.yaml)
//  2. TOML file (config/meeple.toml)
//  3. Environment variables (.env file)
//  4. Default values
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := loadYAMLConfig(config); err != nil {
		if err := loadTOMLConfig(config); err != nil {
			loadEnvConfig(config)
		}
	}
	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadYAMLConfig(config *Config) error {
	yamlPath := filepath.Join("config", "meeple.yaml")
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return fmt.Errorf("failed to read YAML config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

func loadTOMLConfig(config *Config) error {
	tomlPath := filepath.Join("config", "meeple.toml")
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		return fmt.Errorf("TOML config file not found: %s", tomlPath)
	}
	if _, err := toml.DecodeFile(tomlPath, config); err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return nil
}

func loadEnvConfig(config *Config) {
	// Load .env file if it exists; missing files are fine.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	config.Catalog = CatalogConfig{
		BaseURL:           getEnvString("MEEPLE_CATALOG_URL", ""),
		TimeoutSeconds:    getEnvInt("MEEPLE_CATALOG_TIMEOUT", 0),
		MaxAttempts:       getEnvInt("MEEPLE_CATALOG_ATTEMPTS", 0),
		RetryDelaySeconds: getEnvInt("MEEPLE_CATALOG_RETRY_DELAY", 0),
	}
	config.Data.Dir = getEnvString("MEEPLE_DATA_DIR", "")
	config.Database.URL = getEnvString("MEEPLE_DATABASE_URL", "")
	config.RefreshCron = getEnvString("MEEPLE_REFRESH_CRON", "")
	config.Locale = getEnvString("MEEPLE_LOCALE", "")
}

func applyDefaults(config *Config) {
	if config.Catalog.BaseURL == "" {
		config.Catalog.BaseURL = "https://boardgamegeek.com/xmlapi2"
	}
	if config.Catalog.TimeoutSeconds == 0 {
		config.Catalog.TimeoutSeconds = 15
	}
	if config.Catalog.MaxAttempts == 0 {
		config.Catalog.MaxAttempts = 3
	}
	if config.Catalog.RetryDelaySeconds == 0 {
		config.Catalog.RetryDelaySeconds = 3
	}
	if config.Data.Dir == "" {
		config.Data.Dir = "data"
	}
	if config.Locale == "" {
		config.Locale = "en"
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Catalog.TimeoutSeconds <= 0 {
		return fmt.Errorf("catalog timeout_seconds must be positive, got %d", c.Catalog.TimeoutSeconds)
	}
	if c.Catalog.MaxAttempts <= 0 {
		return fmt.Errorf("catalog max_attempts must be positive, got %d", c.Catalog.MaxAttempts)
	}
	if c.Catalog.RetryDelaySeconds < 0 {
		return fmt.Errorf("catalog retry_delay_seconds must be non-negative, got %d", c.Catalog.RetryDelaySeconds)
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data dir cannot be empty")
	}
	if c.Locale != "en" && c.Locale != "ja" {
		return fmt.Errorf("invalid locale: %s (must be en or ja)", c.Locale)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
