package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Yates-Labs/wingman/internal/style"
)

var (
	ErrGenerationFailed = errors.New("comment generation failed")
)

// Comment is a generated reply to a profile.
type Comment struct {
	// Text is the trimmed model output
	Text string `json:"text"`

	// Tone is empty when the generic greeting was used
	Tone style.Tone `json:"tone,omitempty"`

	// Prompt is the instruction sent to the model
	Prompt string `json:"prompt"`

	// GeneratedAt is when this comment was created
	GeneratedAt time.Time `json:"generated_at"`

	// Model is the LLM model used to generate this comment
	Model string `json:"model"`
}

// Generator produces comments from already-assembled prompts using an LLM.
type Generator struct {
	llm    LLM
	config LLMConfig
}

// NewGenerator creates a comment generator with the given LLM implementation.
func NewGenerator(llm LLM, config LLMConfig) *Generator {
	return &Generator{
		llm:    llm,
		config: config,
	}
}

// Config returns the generator's settings.
func (g *Generator) Config() LLMConfig {
	return g.config
}

// Generate invokes the LLM with prompt using the configured sampling settings.
// Failures are returned as-is; nothing is retried.
func (g *Generator) Generate(ctx context.Context, tone style.Tone, prompt string) (*Comment, error) {
	if g.llm == nil {
		return nil, fmt.Errorf("%w: LLM is required", ErrGenerationFailed)
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrGenerationFailed)
	}

	text, err := g.llm.Complete(ctx, prompt, g.config.Temperature, g.config.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: LLM invocation failed: %w", ErrGenerationFailed, err)
	}

	return &Comment{
		Text:        strings.TrimSpace(text),
		Tone:        tone,
		Prompt:      prompt,
		GeneratedAt: time.Now(),
		Model:       g.config.Model,
	}, nil
}
