// Package gate screens out-of-domain questions before any generation work.
// The gate is fail-closed: an unclassifiable question never reaches the
// generation path, both for cost control and to stay within the legal
// domain scope.
package gate

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/llm"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// IsLegal classifies a question as in-domain using a single backend call
// with a strict YES/NO output instruction. Trivially malformed questions
// are rejected without a model call. Any backend failure yields false.
func IsLegal(ctx context.Context, question string, backend llm.Backend) bool {
	trimmed := strings.TrimSpace(question)
	if len(trimmed) < 3 || !containsLetter(trimmed) {
		return false
	}

	prompt := fmt.Sprintf(models.ClassificationPromptTemplate, question)
	response, err := backend.Invoke(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Classification call failed, rejecting query")
		return false
	}

	verdict := strings.ToUpper(strings.TrimSpace(response))
	isLegal := strings.Contains(verdict, "YES") && !strings.Contains(verdict, "NO")

	log.Info().Str("question", truncate(question, 50)).Bool("legal", isLegal).Msg("Classified query")
	return isLegal
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
