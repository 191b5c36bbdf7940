// Package generator composes the retrieval-augmented prompt and obtains the
// raw model answer. Output is unvalidated text; the response parser owns
// validation.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/llm"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// Retriever returns the top-k chunks most relevant to a query.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]models.Chunk, error)
}

// GenerationError reports that both invocation mechanisms failed for one
// request. It is surfaced to the caller; no further retry happens.
type GenerationError struct {
	Model     string
	Primary   error
	Secondary error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed on %s: invoke: %v, complete: %v", e.Model, e.Primary, e.Secondary)
}

func (e *GenerationError) Unwrap() error { return e.Secondary }

// Generator turns an admitted question into raw model output.
type Generator struct {
	retriever Retriever
	topK      int
}

func New(retriever Retriever, topK int) *Generator {
	if topK <= 0 {
		topK = 3
	}
	return &Generator{retriever: retriever, topK: topK}
}

// Generate retrieves context, builds the single enriched prompt and invokes
// the active backend once. If the primary mechanism fails it retries once
// through the secondary mechanism before giving up.
func (g *Generator) Generate(ctx context.Context, question string, backend llm.Backend) (string, error) {
	chunks, err := g.retriever.Search(ctx, question, g.topK)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve context: %v", err)
	}

	prompt := g.buildPrompt(question, chunks)

	raw, primaryErr := backend.Invoke(ctx, prompt)
	if primaryErr == nil {
		return raw, nil
	}
	log.Warn().Err(primaryErr).Str("model", backend.Model()).Msg("Primary invocation failed, retrying via completion")

	raw, secondaryErr := backend.Complete(ctx, prompt)
	if secondaryErr == nil {
		return raw, nil
	}
	return "", &GenerationError{Model: backend.Model(), Primary: primaryErr, Secondary: secondaryErr}
}

func (g *Generator) buildPrompt(question string, chunks []models.Chunk) string {
	var sb strings.Builder
	sb.WriteString(models.SystemPrompt)
	sb.WriteString("\n\nContext:\n")
	for _, chunk := range chunks {
		sb.WriteString(fmt.Sprintf("[Source: %s]\n%s\n\n", chunk.Source, chunk.Content))
	}
	sb.WriteString("Legal Query: ")
	sb.WriteString(question)
	sb.WriteString("\n\nProvide a structured legal analysis with exactly 5 lines as specified above.\n")
	sb.WriteString("Do NOT use any markdown formatting, asterisks, or special characters.\n")
	sb.WriteString("Use plain text only.")
	return sb.String()
}
