// Package config provides configuration loading and validation for the
// recommendation engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables resolved at startup.
type Config struct {
	// Credentials and endpoints
	APIKey        string `json:"api_key,omitempty"`        // Completion-provider API key
	ProviderURL   string `json:"provider_url,omitempty"`   // Job-search provider endpoint
	ProviderToken string `json:"provider_token,omitempty"` // Job-search provider bearer token
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	RedisAddr     string `json:"redis_addr,omitempty"`     // host:port for the recommendation cache
	RedisPassword string `json:"redis_password,omitempty"`

	// Pipeline tuning
	BatchSize        int `json:"batch_size,omitempty"`        // Jobs per scoring request
	FetchConcurrency int `json:"fetch_concurrency,omitempty"` // Provider requests in flight
	TimeoutSeconds   int `json:"timeout_seconds,omitempty"`   // Per-call timeout for provider requests
	Limit            int `json:"limit,omitempty"`             // Top-N recommendations returned
	CacheTTLMinutes  int `json:"cache_ttl_minutes,omitempty"`
	RefreshHours     int `json:"refresh_hours,omitempty"` // Background refresh interval

	// Server
	Port      int    `json:"port,omitempty"`
	JWTSecret string `json:"jwt_secret,omitempty"`
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

// FromEnv fills empty fields from environment variables. Explicit config
// file values win over the environment.
func (c *Config) FromEnv() {
	envString(&c.APIKey, "GEMINI_API_KEY")
	envString(&c.ProviderURL, "JOB_PROVIDER_URL")
	envString(&c.ProviderToken, "JOB_PROVIDER_TOKEN")
	envString(&c.DatabaseURL, "DATABASE_URL")
	envString(&c.RedisAddr, "REDIS_ADDR")
	envString(&c.RedisPassword, "REDIS_PASSWORD")
	envString(&c.JWTSecret, "JWT_SECRET")
}

func envString(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BatchSize < 0 {
		return fmt.Errorf("config error: 'batch_size' must be non-negative")
	}
	if c.FetchConcurrency < 0 {
		return fmt.Errorf("config error: 'fetch_concurrency' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ProviderURL == "" {
		result.ProviderURL = defaults.ProviderURL
	}
	if result.ProviderToken == "" {
		result.ProviderToken = defaults.ProviderToken
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}
	if result.FetchConcurrency == 0 {
		result.FetchConcurrency = defaults.FetchConcurrency
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.CacheTTLMinutes == 0 {
		result.CacheTTLMinutes = defaults.CacheTTLMinutes
	}
	if result.RefreshHours == 0 {
		result.RefreshHours = defaults.RefreshHours
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// Defaults returns the built-in default configuration values.
func Defaults() Config {
	return Config{
		BatchSize:        5,
		FetchConcurrency: 3,
		TimeoutSeconds:   30,
		Limit:            10,
		CacheTTLMinutes:  360,
		RefreshHours:     6,
		Port:             8080,
	}
}
