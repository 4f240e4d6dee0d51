package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvModel, EnvBaseURL, EnvAPIKey, EnvTemperature, EnvMaxTokens} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "deepseek-r1:1.5b" {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.BaseURL != "http://localhost:11434" {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Temperature != 0.7 || cfg.MaxTokens != 150 {
		t.Errorf("unexpected sampling defaults (%v, %d)", cfg.Temperature, cfg.MaxTokens)
	}
	if cfg.OpenAIBaseURL() != "http://localhost:11434/v1" {
		t.Errorf("unexpected OpenAI base URL %q", cfg.OpenAIBaseURL())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvModel, "llama3.2")
	t.Setenv(EnvBaseURL, "http://ollama.internal:11434/")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvTemperature, "1.1")
	t.Setenv(EnvMaxTokens, "80")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "llama3.2" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
	if cfg.BaseURL != "http://ollama.internal:11434" {
		t.Errorf("trailing slash not trimmed: %q", cfg.BaseURL)
	}

	llm := cfg.LLMConfig()
	if llm.BaseURL != "http://ollama.internal:11434/v1" || llm.APIKey != "secret" {
		t.Errorf("unexpected LLM config %+v", llm)
	}
	if llm.Temperature != 1.1 || llm.MaxTokens != 80 {
		t.Errorf("unexpected sampling (%v, %d)", llm.Temperature, llm.MaxTokens)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad base url", EnvBaseURL, "localhost:11434"},
		{"non-numeric temperature", EnvTemperature, "warm"},
		{"temperature out of range", EnvTemperature, "3"},
		{"nan temperature", EnvTemperature, "NaN"},
		{"non-numeric max tokens", EnvMaxTokens, "many"},
		{"zero max tokens", EnvMaxTokens, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OLLAMA_MODEL=phi3\nWINGMAN_MAX_TOKENS=60\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv(EnvModel)
		os.Unsetenv(EnvMaxTokens)
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "phi3" || cfg.MaxTokens != 60 {
		t.Errorf("env file not applied: %+v", cfg)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}

func TestOpenAIBaseURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"server root", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"v1 with slash", "http://gpu-box:11434/v1/", "http://gpu-box:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvBaseURL, tt.base)
			cfg, err := FromEnv()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cfg.OpenAIBaseURL(); got != tt.want {
				t.Errorf("OpenAIBaseURL() = %q, want %q", got, tt.want)
			}
			if got := cfg.LLMConfig().BaseURL; got != tt.want {
				t.Errorf("LLMConfig().BaseURL = %q, want %q", got, tt.want)
			}
		})
	}

	direct := Config{BaseURL: "http://localhost:11434/v1"}
	if got := direct.OpenAIBaseURL(); got != "http://localhost:11434/v1" {
		t.Errorf("OpenAIBaseURL() on unnormalized config = %q", got)
	}
}

func TestValidate_NaNTemperature(t *testing.T) {
	cfg := Config{Model: "m", BaseURL: "http://localhost:11434", Temperature: math.NaN(), MaxTokens: 10}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
