package comment

import (
	"context"
	"regexp"
	"sync"
)

var quotedKeyword = regexp.MustCompile(`'([^']+)'\.`)

// MockLLM is a deterministic LLM implementation for testing.
// It returns predictable responses based on prompt content.
type MockLLM struct {
	// Response is the fixed text returned by Complete.
	// If empty, a default response is generated from the prompt.
	Response string

	// Error, if set, is returned by Complete instead of a response.
	Error error

	mu              sync.Mutex
	lastPrompt      string
	lastTemperature float64
	lastMaxTokens   int
	calls           int
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Complete returns the configured response or generates a deterministic one.
func (m *MockLLM) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	m.mu.Lock()
	m.lastPrompt = prompt
	m.lastTemperature = temperature
	m.lastMaxTokens = maxTokens
	m.calls++
	m.mu.Unlock()

	if m.Error != nil {
		return "", m.Error
	}

	if m.Response != "" {
		return m.Response, nil
	}

	return generateMockResponse(prompt), nil
}

// LastPrompt returns the most recent prompt passed to Complete.
func (m *MockLLM) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

// LastSampling returns the temperature and token limit of the most recent call.
func (m *MockLLM) LastSampling() (float64, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTemperature, m.lastMaxTokens
}

// Calls returns how many times Complete was invoked.
func (m *MockLLM) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// generateMockResponse echoes the quoted keyword from the instruction line,
// or a plain greeting when the prompt carries none.
func generateMockResponse(prompt string) string {
	if m := quotedKeyword.FindStringSubmatch(prompt); len(m) == 2 {
		return "So, " + m[1] + "? Tell me more over a drink sometime."
	}
	return "Hi there! Your profile made me smile."
}
