package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderPerplexity, config.Provider)
	assert.Equal(t, DefaultPerplexityModel, config.Model)
	assert.Equal(t, DefaultPerplexityBaseURL, config.BaseURL)
}

func TestFromEnv_PerplexityDefault(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_BASE_URL", "")

	config := FromEnv()

	assert.Equal(t, ProviderPerplexity, config.Provider)
	assert.Equal(t, "pplx-test", config.APIKey)
	assert.Equal(t, DefaultPerplexityModel, config.Model)
}

func TestFromEnv_Gemini(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "gem-test")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_BASE_URL", "")

	config := FromEnv()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gem-test", config.APIKey)
	assert.Equal(t, DefaultGeminiModel, config.Model)
}

func TestFromEnv_ModelOverride(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")
	t.Setenv("AI_MODEL", "sonar-pro")
	t.Setenv("AI_BASE_URL", "http://localhost:9090")

	config := FromEnv()

	assert.Equal(t, "sonar-pro", config.Model)
	assert.Equal(t, "http://localhost:9090", config.BaseURL)
}

func TestNewPerplexityClient_RequiresAPIKey(t *testing.T) {
	_, err := NewPerplexityClient(&Config{Provider: ProviderPerplexity})
	assert.Error(t, err)
}
