// Package llm provides the completion-provider client used for preference
// extraction and job scoring.
package llm

// Task identifies which pipeline stage a completion request serves. Each task
// maps to a model sized for it: extraction is a cheap structured-output call,
// scoring embeds whole job batches and needs more context.
type Task string

const (
	// TaskExtract is profile extraction from bio/resume text
	TaskExtract Task = "extract"
	// TaskScore is batched job fit scoring
	TaskScore Task = "score"
)

// Provider represents a completion provider
type Provider string

// Provider constants define supported completion providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the recommendation engine
type Config struct {
	Provider    Provider
	Models      map[Task]string
	Temperature float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[Task]string{
			TaskExtract: "gemini-2.5-flash-lite",
			TaskScore:   "gemini-2.5-flash",
		},
		Temperature: 0.1,
	}
}

// GetModel returns the model name for a given task, falling back to the
// extract model when a task has no explicit mapping.
func (c *Config) GetModel(task Task) string {
	if model, ok := c.Models[task]; ok {
		return model
	}
	if model, ok := c.Models[TaskExtract]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a task
func (c *Config) WithModel(task Task, model string) *Config {
	newConfig := &Config{
		Provider:    c.Provider,
		Models:      make(map[Task]string),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[task] = model
	return newConfig
}
