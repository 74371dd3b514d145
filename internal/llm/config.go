// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching callers.
package llm

import "os"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderPerplexity is the Perplexity chat-completions provider (default)
	ProviderPerplexity Provider = "perplexity"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default endpoint and model for the Perplexity provider.
const (
	DefaultPerplexityBaseURL = "https://api.perplexity.ai"
	DefaultPerplexityModel   = "llama-3.1-sonar-large-128k-online"
	DefaultGeminiModel       = "gemini-2.5-flash"
)

// Config holds the provider configuration for the application
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	BaseURL  string
}

// DefaultConfig returns the default configuration (currently Perplexity)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderPerplexity,
		Model:    DefaultPerplexityModel,
		BaseURL:  DefaultPerplexityBaseURL,
	}
}

// FromEnv builds a Config from environment variables. AI_PROVIDER selects the
// provider; the API key comes from the provider-specific variable. AI_MODEL
// overrides the provider's default model.
func FromEnv() *Config {
	config := DefaultConfig()

	switch Provider(os.Getenv("AI_PROVIDER")) {
	case ProviderGemini:
		config.Provider = ProviderGemini
		config.Model = DefaultGeminiModel
		config.BaseURL = ""
		config.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		config.APIKey = os.Getenv("PERPLEXITY_API_KEY")
	}

	if model := os.Getenv("AI_MODEL"); model != "" {
		config.Model = model
	}
	if baseURL := os.Getenv("AI_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	return config
}
