// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching of models and future multi-provider support.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// DefaultModel is the model used for copywriting when none is configured.
// Long-form persuasive copy needs the most capable tier.
const DefaultModel = "gemini-2.5-pro"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// WithModel returns a new Config using the given model, falling back to the
// receiver's model when empty.
func (c *Config) WithModel(model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Model:    c.Model,
	}
	if model != "" {
		newConfig.Model = model
	}
	return newConfig
}
