package llm

import "context"

// Client is an abstraction over LLM providers
type Client interface {
	// Complete sends a system instruction plus a user prompt and returns the
	// model's text response. Cancellation and deadlines come from ctx.
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	default:
		return NewPerplexityClient(config)
	}
}
