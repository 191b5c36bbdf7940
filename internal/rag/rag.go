// Package rag sequences the query pipeline: admission gate, retrieval,
// generation and response parsing. The handles it holds are immutable after
// init, so concurrent queries share them without locking.
package rag

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/gate"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/generator"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/llm"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/parser"
)

// ErrServiceFailure is the generic per-request failure surfaced to callers.
// Internal failure detail stays in the logs, never in responses.
var ErrServiceFailure = errors.New("error processing query")

// Answerer produces raw model output for an admitted question.
type Answerer interface {
	Generate(ctx context.Context, question string, backend llm.Backend) (string, error)
}

// Classifier decides whether a question is in the legal domain.
type Classifier func(ctx context.Context, question string, backend llm.Backend) bool

// RAG is the query orchestrator. Build it once at startup, after the index
// and the active backend are ready.
type RAG struct {
	backend  llm.Backend
	answerer Answerer
	classify Classifier
	ready    bool
}

// NewRAG wires the orchestrator from the immutable pipeline handles.
func NewRAG(backend llm.Backend, answerer Answerer) *RAG {
	return &RAG{
		backend:  backend,
		answerer: answerer,
		classify: gate.IsLegal,
		ready:    backend != nil && answerer != nil,
	}
}

// Query runs one question through the full pipeline and always produces the
// fixed two-perspective response shape.
func (r *RAG) Query(ctx context.Context, question string) (models.QueryResponse, error) {
	if !r.ready {
		return models.QueryResponse{}, ErrServiceFailure
	}

	log.Info().Str("question", question).Msg("Processing query")

	if !r.classify(ctx, question, r.backend) {
		log.Info().Msg("Non-legal query detected, returning rejection message")
		return rejection(question), nil
	}

	raw, err := r.answerer.Generate(ctx, question, r.backend)
	if err != nil {
		log.Error().Err(err).Msg("Generation failed")
		return models.QueryResponse{}, ErrServiceFailure
	}

	// Second line of defense: the gate is probabilistic, and the model may
	// still judge the enriched prompt out-of-domain.
	if strings.Contains(raw, models.RejectionLiteral) {
		log.Info().Msg("Model detected non-legal query, returning rejection message")
		return rejection(question), nil
	}

	offender, victim := parser.Parse(raw)
	return models.QueryResponse{
		Question:            question,
		OffenderPerspective: offender,
		VictimPerspective:   victim,
	}, nil
}

// Health reports component readiness. The pipeline is ready only when both
// the index-backed answerer and the active backend are in place.
func (r *RAG) Health() models.Health {
	return models.Health{
		IndexReady:    r.answerer != nil,
		ModelReady:    r.backend != nil,
		PipelineReady: r.ready,
	}
}

func rejection(question string) models.QueryResponse {
	return models.QueryResponse{
		Question:            question,
		OffenderPerspective: models.RejectionLiteral,
		VictimPerspective:   "",
	}
}

var _ Answerer = (*generator.Generator)(nil)
