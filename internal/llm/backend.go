// Package llm provides the hosted chat-completion capability and the
// startup-time selection of the active backend from a ranked candidate list.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/config"
)

// Backend is one configured hosted model. Invoke is the primary chat
// invocation mechanism; Complete is the secondary single-prompt mechanism
// the generator falls back to when Invoke fails.
type Backend interface {
	Model() string
	Invoke(ctx context.Context, prompt string) (string, error)
	Complete(ctx context.Context, prompt string) (string, error)
}

// GroqBackend reaches a Groq-hosted model through its OpenAI-compatible API.
type GroqBackend struct {
	llm         *openai.LLM
	model       string
	temperature float64
	maxTokens   int
}

// NewGroqBackend constructs a backend for one candidate. The construction
// itself does not probe the model.
func NewGroqBackend(baseURL, key string, candidate config.ModelCandidate) (*GroqBackend, error) {
	client, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(strings.TrimPrefix(key, "Bearer ")),
		openai.WithModel(candidate.Name),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model %s: %v", candidate.Name, err)
	}
	return &GroqBackend{
		llm:         client,
		model:       candidate.Name,
		temperature: candidate.Temperature,
		maxTokens:   candidate.MaxTokens,
	}, nil
}

func (b *GroqBackend) Model() string { return b.model }

func (b *GroqBackend) Invoke(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}
	resp, err := b.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(b.temperature),
		llms.WithMaxTokens(b.maxTokens),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model %s returned no choices", b.model)
	}
	return resp.Choices[0].Content, nil
}

func (b *GroqBackend) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, b.llm, prompt,
		llms.WithTemperature(b.temperature),
		llms.WithMaxTokens(b.maxTokens),
	)
}
