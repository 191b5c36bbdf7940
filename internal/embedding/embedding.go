// Package embedding wires the OpenAI-compatible embedding endpoint into the
// vector store. Embeddings are deterministic for a fixed model identifier;
// index build and load must use the same model.
package embedding

import (
	"context"
	"os"
	"strings"

	"github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/config"
)

// NewEmbedder creates a langchaingo embedder against the configured
// OpenAI-compatible endpoint.
func NewEmbedder(cfg *config.EmbeddingConfig) (*embeddings.EmbedderImpl, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(os.Getenv(cfg.KeyEnv), "Bearer ")),
		openai.WithEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return embeddings.NewEmbedder(llm)
}

// Func adapts a langchaingo embedder to the chromem embedding capability.
func Func(embedder *embeddings.EmbedderImpl) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
}
