package rag

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/chunker"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/generator"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/loader"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/vectordb"
)

func normalizedHashEmbed(_ context.Context, text string) ([]float32, error) {
	const dims = 16
	vec := make([]float32, dims)
	for i, r := range text {
		vec[(int(r)+i)%dims]++
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

// Startup with no document source: ingestion falls back to the embedded
// reference corpus, the index build succeeds and the pipeline reports ready.
func TestPipeline_NoCorpusDegradedMode(t *testing.T) {
	ctx := context.Background()

	docs := loader.LoadCorpus(filepath.Join(t.TempDir(), "no-such-corpus"))
	splitter, err := chunker.New(1000, 200)
	require.NoError(t, err)
	chunks := splitter.SplitAll(docs)
	require.NotEmpty(t, chunks)

	store, err := vectordb.Build(ctx, chunks, "legal_docs", normalizedHashEmbed)
	require.NoError(t, err)

	backend := &scriptedBackend{classification: "YES", generation: templateResponse}
	r := NewRAG(backend, generator.New(store, 3))

	health := r.Health()
	assert.True(t, health.IndexReady)
	assert.True(t, health.ModelReady)
	assert.True(t, health.PipelineReady)

	resp, err := r.Query(ctx, "What are my rights if someone records me without consent?")
	require.NoError(t, err)
	assert.Contains(t, resp.OffenderPerspective, "Legal Status")
	assert.Contains(t, resp.VictimPerspective, "Legal Protection")
}
