// Package comment turns a chosen tone template into a finished profile
// comment. It assembles the persona prompt, defines a provider-agnostic LLM
// interface with an Ollama implementation and a deterministic mock, and wraps
// them in a Generator that returns structured Comment values.
package comment

import (
	"context"
	"errors"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// LLM defines the interface for interacting with language models.
// Implementations must be safe for concurrent use.
type LLM interface {
	// Complete produces text for prompt with the given sampling settings.
	// A maxTokens of zero leaves the length to the provider.
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

const (
	DefaultModel       = "deepseek-r1:1.5b"
	DefaultBaseURL     = "http://localhost:11434"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

// LLMConfig holds the model and sampling settings used for generation.
type LLMConfig struct {
	// Model is the Ollama model tag (e.g., "deepseek-r1:1.5b", "llama3.2")
	Model string

	// BaseURL is the OpenAI-compatible endpoint, including the /v1 suffix.
	BaseURL string

	// APIKey is sent as a bearer token. Ollama ignores it.
	APIKey string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float64

	// MaxTokens limits the response length (0 = use provider default)
	MaxTokens int
}

// DefaultLLMConfig returns the settings used for comment generation.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       DefaultModel,
		BaseURL:     DefaultBaseURL + "/v1",
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}
