package comment

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// systemMessage precedes every prompt sent to the model.
const systemMessage = "You are a helpful assistant."

// placeholderAPIKey satisfies the client when talking to a keyless Ollama server.
const placeholderAPIKey = "ollama"

// OllamaLLM implements the LLM interface against Ollama's OpenAI-compatible API.
type OllamaLLM struct {
	client openai.Client
	config LLMConfig
}

// NewOllamaLLM creates an Ollama-backed LLM implementation.
// Returns an error if the model or endpoint is missing.
func NewOllamaLLM(config LLMConfig, opts ...option.RequestOption) (*OllamaLLM, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("%w: missing base URL", ErrInvalidConfig)
	}

	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = placeholderAPIKey
	}

	reqOpts := []option.RequestOption{
		option.WithBaseURL(config.BaseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	reqOpts = append(reqOpts, opts...)

	return &OllamaLLM{
		client: openai.NewClient(reqOpts...),
		config: config,
	}, nil
}

// Complete sends the prompt to the model and returns the generated text.
func (o *OllamaLLM) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidConfig)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessage),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLLMFailed, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no response generated", ErrLLMFailed)
	}

	return completion.Choices[0].Message.Content, nil
}
