package orchestrator

import (
	"fmt"

	"github.com/Yates-Labs/wingman/internal/analyzer"
	"github.com/Yates-Labs/wingman/internal/comment"
	"github.com/Yates-Labs/wingman/internal/style"
)

// PipelineConfig holds configuration for a pipeline backed by Ollama.
type PipelineConfig struct {
	// LLMConfig holds the model endpoint and sampling settings
	LLMConfig comment.LLMConfig

	// MaxKeywords caps the keywords extracted per profile (0 = analyzer default)
	MaxKeywords int

	// Seed makes tone and keyword draws reproducible (0 = unseeded)
	Seed uint64
}

// DefaultPipelineConfig returns sensible defaults for a local Ollama server.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		LLMConfig:   comment.DefaultLLMConfig(),
		MaxKeywords: analyzer.DefaultMaxKeywords,
	}
}

// NewPipeline wires the lexicon analyzer, a fresh uniform policy and an
// Ollama-backed generator.
func NewPipeline(config PipelineConfig) (*Pipeline, error) {
	llm, err := comment.NewOllamaLLM(config.LLMConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM: %w", err)
	}

	return newPipeline(config, llm)
}

func newPipeline(config PipelineConfig, llm comment.LLM) (*Pipeline, error) {
	var policyRand, keywordRand style.Rand
	if config.Seed != 0 {
		policyRand = style.NewSeededRand(config.Seed)
		keywordRand = style.NewSeededRand(config.Seed + 1)
	}

	return New(
		analyzer.NewLexicon(config.MaxKeywords),
		style.NewPolicy(policyRand),
		comment.NewGenerator(llm, config.LLMConfig),
		WithRand(keywordRand),
	)
}
