package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.Models[TaskExtract])
	assert.NotEmpty(t, cfg.Models[TaskScore])
}

func TestGetModel_FallsBackToExtract(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[Task]string{TaskExtract: "model-a"},
	}

	assert.Equal(t, "model-a", cfg.GetModel(TaskExtract))
	assert.Equal(t, "model-a", cfg.GetModel(TaskScore))
	assert.Equal(t, "model-a", cfg.GetModel(Task("unknown")))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	cfg := DefaultConfig()
	original := cfg.GetModel(TaskScore)

	modified := cfg.WithModel(TaskScore, "custom-model")

	assert.Equal(t, "custom-model", modified.GetModel(TaskScore))
	assert.Equal(t, original, cfg.GetModel(TaskScore))
	assert.Equal(t, cfg.GetModel(TaskExtract), modified.GetModel(TaskExtract))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
