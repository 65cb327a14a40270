// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied by MergeWithDefaults and Default.
const (
	DefaultLanguage    = "en"
	DefaultTopN        = 5
	DefaultPort        = 8080
	DefaultConcurrency = 4
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; CLI flags override whatever is set here.
type Config struct {
	// Extraction
	Language           string `json:"language,omitempty"`             // Resume language tag: en or ar
	PreserveLineBreaks bool   `json:"preserve_line_breaks,omitempty"` // Keep line structure during normalization

	// Matching
	TopN        int    `json:"top_n,omitempty"`        // Number of ranked matches to return
	CatalogPath string `json:"catalog_path,omitempty"` // JSON catalog replacing the built-in postings
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL of a job_postings catalog

	// Service
	Port        int `json:"port,omitempty"`        // HTTP listen port
	Concurrency int `json:"concurrency,omitempty"` // Parallel documents in batch runs

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs
	Debug   bool `json:"debug,omitempty"`    // Enable debug logging
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:    DefaultLanguage,
		TopN:        DefaultTopN,
		Port:        DefaultPort,
		Concurrency: DefaultConcurrency,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Language {
	case "", "en", "ar":
	default:
		return fmt.Errorf("config error: 'language' must be 'en' or 'ar', got %q", c.Language)
	}

	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.CatalogPath != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'catalog_path' and 'database_url' are mutually exclusive")
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills DatabaseURL from the DATABASE_URL environment variable when unset.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" && c.CatalogPath == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}
