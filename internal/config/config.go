// Package config loads runtime settings from the environment, reading a .env
// file first when one is present.
package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/Yates-Labs/wingman/internal/comment"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	EnvModel       = "OLLAMA_MODEL"
	EnvBaseURL     = "OLLAMA_BASE_URL"
	EnvAPIKey      = "OLLAMA_API_KEY"
	EnvTemperature = "WINGMAN_TEMPERATURE"
	EnvMaxTokens   = "WINGMAN_MAX_TOKENS"
)

// Config holds the settings consumed once at startup.
type Config struct {
	Model       string
	BaseURL     string
	APIKey      string
	Temperature float64
	MaxTokens   int
}

// Load reads .env files (missing ones are ignored) and then the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Model:       getenv(EnvModel, comment.DefaultModel),
		BaseURL:     trimBaseURL(getenv(EnvBaseURL, comment.DefaultBaseURL)),
		APIKey:      os.Getenv(EnvAPIKey),
		Temperature: comment.DefaultTemperature,
		MaxTokens:   comment.DefaultMaxTokens,
	}

	if v := os.Getenv(EnvTemperature); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvTemperature, err)
		}
		cfg.Temperature = t
	}
	if v := os.Getenv(EnvMaxTokens); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvMaxTokens, err)
		}
		cfg.MaxTokens = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used to reach a model.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, EnvModel)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http(s) URL, got %q", ErrInvalidConfig, EnvBaseURL, c.BaseURL)
	}
	if math.IsNaN(c.Temperature) || c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: %s must be within [0, 2], got %v", ErrInvalidConfig, EnvTemperature, c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, EnvMaxTokens, c.MaxTokens)
	}
	return nil
}

// OpenAIBaseURL returns the OpenAI-compatible endpoint served by Ollama.
func (c Config) OpenAIBaseURL() string {
	return trimBaseURL(c.BaseURL) + "/v1"
}

// LLMConfig converts the settings for the comment package.
func (c Config) LLMConfig() comment.LLMConfig {
	return comment.LLMConfig{
		Model:       c.Model,
		BaseURL:     c.OpenAIBaseURL(),
		APIKey:      c.APIKey,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}

// trimBaseURL drops trailing slashes and a trailing /v1 so the server root
// can be given either way.
func trimBaseURL(base string) string {
	base = strings.TrimRight(base, "/")
	base = strings.TrimSuffix(base, "/v1")
	return strings.TrimRight(base, "/")
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
