package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/config"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// ErrNoBackendAvailable means every candidate backend failed its liveness
// probe. Fatal at startup: the service cannot operate without a model.
var ErrNoBackendAvailable = errors.New("no backend available")

// Factory builds a Backend for one candidate configuration.
type Factory func(candidate config.ModelCandidate) (Backend, error)

// GroqFactory builds Groq backends against the configured endpoint with the
// one required credential.
func GroqFactory(baseURL, key string) Factory {
	return func(candidate config.ModelCandidate) (Backend, error) {
		return NewGroqBackend(baseURL, key, candidate)
	}
}

// Select iterates candidates in order, probing each with a fixed liveness
// prompt, and commits the first one that responds. The committed backend is
// the process-wide active backend; selection never reruns mid-process. Each
// candidate is probed exactly once, with no per-candidate retry. A backend
// outage discovered later surfaces as a per-request generation failure.
func Select(ctx context.Context, candidates []config.ModelCandidate, factory Factory) (Backend, error) {
	for _, candidate := range candidates {
		backend, err := factory(candidate)
		if err != nil {
			log.Warn().Err(err).Str("model", candidate.Name).Msg("Failed to construct backend candidate")
			continue
		}
		if _, err := backend.Invoke(ctx, models.ProbePrompt); err != nil {
			log.Warn().Err(err).Str("model", candidate.Name).Msg("Backend candidate failed liveness probe")
			continue
		}
		log.Info().Str("model", candidate.Name).Msg("LLM initialized successfully")
		return backend, nil
	}
	return nil, fmt.Errorf("failed to initialize any of the %d candidate models: %w", len(candidates), ErrNoBackendAvailable)
}
