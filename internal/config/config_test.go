package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"provider_url": "https://scraper.example.com/run",
		"batch_size": 3,
		"limit": 5,
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://scraper.example.com/run", cfg.ProviderURL)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"batch_size": }`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv_FillsOnlyEmptyFields(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := Config{DatabaseURL: "postgres://file"}
	cfg.FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	// File values win over the environment.
	assert.Equal(t, "postgres://file", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	valid := Config{BatchSize: 5, Limit: 10, Port: 8080}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{BatchSize: -1}).Validate())
	assert.Error(t, (&Config{Limit: -5}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{TimeoutSeconds: -1}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{BatchSize: 3, ProviderURL: "https://custom.example.com"}
	merged := cfg.MergeWithDefaults(Defaults())

	// Explicit values survive.
	assert.Equal(t, 3, merged.BatchSize)
	assert.Equal(t, "https://custom.example.com", merged.ProviderURL)

	// Gaps come from the defaults.
	assert.Equal(t, 10, merged.Limit)
	assert.Equal(t, 3, merged.FetchConcurrency)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 6, merged.RefreshHours)
}

func TestDefaults_AreValid(t *testing.T) {
	d := Defaults()
	assert.NoError(t, d.Validate())
}
