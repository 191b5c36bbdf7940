package vectordb

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// fakeEmbed is a deterministic embedding function: each rune contributes to
// a fixed dimension, and the vector is L2-normalized. Similar texts map to
// similar vectors, which is enough for ranking assertions.
func fakeEmbed(_ context.Context, text string) ([]float32, error) {
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

func testChunks() []models.Chunk {
	return []models.Chunk{
		{Content: "Section 154 CrPC governs filing an FIR in cognizable cases", Source: "crpc.pdf", ChunkID: 0},
		{Content: "Section 66E IT Act punishes violation of privacy", Source: "itact.pdf", ChunkID: 0},
		{Content: "Anticipatory bail may be sought under Section 438", Source: "crpc.pdf", ChunkID: 1},
	}
}

func TestBuild_EmptyChunksFails(t *testing.T) {
	_, err := Build(context.Background(), nil, "legal_docs", fakeEmbed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoChunks)
}

func TestSearch_RankedBoundedResults(t *testing.T) {
	ctx := context.Background()
	store, err := Build(ctx, testChunks(), "legal_docs", fakeEmbed)
	require.NoError(t, err)
	require.Equal(t, 3, store.Count())

	results, err := store.Search(ctx, "filing an FIR", 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 2)
	assert.NotEmpty(t, results)
	for _, chunk := range results {
		assert.NotEmpty(t, chunk.Content)
		assert.NotEmpty(t, chunk.Source)
	}
}

func TestSearch_ClampsKToIndexSize(t *testing.T) {
	ctx := context.Background()
	store, err := Build(ctx, testChunks(), "legal_docs", fakeEmbed)
	require.NoError(t, err)

	results, err := store.Search(ctx, "privacy", 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearch_ZeroKReturnsNothing(t *testing.T) {
	ctx := context.Background()
	store, err := Build(ctx, testChunks(), "legal_docs", fakeEmbed)
	require.NoError(t, err)

	results, err := store.Search(ctx, "privacy", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSaveLoad_RoundTripAnswersSameTopK(t *testing.T) {
	ctx := context.Background()
	store, err := Build(ctx, testChunks(), "legal_docs", fakeEmbed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "vector_store", "index.chromem")
	require.NoError(t, store.Save(path))

	loaded, err := Load(path, "legal_docs", fakeEmbed)
	require.NoError(t, err)
	assert.Equal(t, store.Count(), loaded.Count())

	for _, query := range []string{"filing an FIR", "violation of privacy", "bail"} {
		want, err := store.Search(ctx, query, 2)
		require.NoError(t, err)
		got, err := loaded.Search(ctx, query, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got, "query %q", query)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.chromem"), "legal_docs", fakeEmbed)
	assert.Error(t, err)
}
