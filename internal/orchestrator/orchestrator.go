package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Yates-Labs/wingman/internal/analyzer"
	"github.com/Yates-Labs/wingman/internal/comment"
	"github.com/Yates-Labs/wingman/internal/style"
)

var ErrInvalidPipeline = errors.New("invalid comment pipeline")

// Pipeline sequences analysis, tone selection, prompt assembly and generation.
type Pipeline struct {
	analyzer  analyzer.Analyzer
	policy    *style.Policy
	generator *comment.Generator

	mu  sync.Mutex
	rng style.Rand
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRand sets the source used to pick a keyword from the analyzer output.
func WithRand(rng style.Rand) Option {
	return func(p *Pipeline) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// New creates a Pipeline. The policy is shared, so weight updates made by the
// caller apply to subsequent comments.
func New(a analyzer.Analyzer, policy *style.Policy, gen *comment.Generator, opts ...Option) (*Pipeline, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: analyzer is required", ErrInvalidPipeline)
	}
	if policy == nil {
		return nil, fmt.Errorf("%w: policy is required", ErrInvalidPipeline)
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: generator is required", ErrInvalidPipeline)
	}

	p := &Pipeline{
		analyzer:  a,
		policy:    policy,
		generator: gen,
		rng:       style.DefaultRand(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Policy returns the policy the pipeline selects tones from.
func (p *Pipeline) Policy() *style.Policy {
	return p.policy
}

// GenerateComment produces a comment for profileText. Generation errors are
// returned unchanged in meaning; there is no retry or fallback text.
func (p *Pipeline) GenerateComment(ctx context.Context, profileText string) (*comment.Comment, error) {
	prompt, choice := p.BuildPrompt(profileText)

	c, err := p.generator.Generate(ctx, choice.Tone, prompt)
	if err != nil {
		slog.Warn("comment generation failed", "tone", choice.Tone, "error", err)
		return nil, err
	}

	slog.Debug("comment generated", "tone", c.Tone, "model", c.Model, "chars", len(c.Text))
	return c, nil
}

// BuildPrompt runs every stage before generation and returns the prompt that
// would be sent, together with the template choice.
func (p *Pipeline) BuildPrompt(profileText string) (string, style.Choice) {
	cleaned := p.analyzer.Clean(profileText)
	keywords := p.analyzer.ExtractKeywords(cleaned)
	sentiment := p.analyzer.AnalyzeSentiment(cleaned)
	slog.Debug("profile analyzed", "keywords", len(keywords), "sentiment", sentiment)

	choice := p.policy.Choose(keywords)
	if choice.Selected {
		slog.Debug("tone selected", "tone", choice.Tone)
	} else {
		slog.Debug("no keywords; using generic greeting")
	}

	p.mu.Lock()
	prompt := comment.BuildPrompt(choice.Template, keywords, sentiment, p.rng)
	p.mu.Unlock()

	return prompt, choice
}
