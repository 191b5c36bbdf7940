package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -1, 0},
		{"negative overlap", 10, -1},
		{"overlap equals size", 10, 10},
		{"overlap exceeds size", 10, 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.size, tc.overlap)
			assert.Error(t, err)
		})
	}
}

func TestSplit_ReconstructsOriginalText(t *testing.T) {
	texts := []string{
		"Section 154 CrPC provides for information in cognizable cases and is the basis for filing an FIR with the police.",
		strings.Repeat("abcdefghij", 137),
		"short",
		"exactly ten",
	}
	configs := []struct{ size, overlap int }{
		{1000, 200}, {50, 10}, {10, 3}, {5, 0},
	}
	for _, cfg := range configs {
		c, err := New(cfg.size, cfg.overlap)
		require.NoError(t, err)
		for _, text := range texts {
			chunks := c.Split(models.Document{Source: "doc", Content: text})
			require.NotEmpty(t, chunks)

			var sb strings.Builder
			sb.WriteString(chunks[0].Content)
			for _, chunk := range chunks[1:] {
				sb.WriteString(chunk.Content[cfg.overlap:])
			}
			assert.Equal(t, text, sb.String(), "size=%d overlap=%d", cfg.size, cfg.overlap)
		}
	}
}

func TestSplit_ChunkLengthsBounded(t *testing.T) {
	c, err := New(100, 20)
	require.NoError(t, err)

	chunks := c.Split(models.Document{Source: "doc", Content: strings.Repeat("x", 955)})
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk.Content)), 100)
	}
}

func TestSplit_ConsecutiveChunksShareExactOverlap(t *testing.T) {
	c, err := New(20, 5)
	require.NoError(t, err)

	text := "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	chunks := c.Split(models.Document{Source: "doc", Content: text})
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1].Content)
		curr := []rune(chunks[i].Content)
		if i < len(chunks)-1 {
			assert.Equal(t, string(prev[len(prev)-5:]), string(curr[:5]))
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	c, err := New(30, 8)
	require.NoError(t, err)

	doc := models.Document{Source: "crpc.pdf", Content: strings.Repeat("legal procedure text ", 40)}
	first := c.Split(doc)
	second := c.Split(doc)
	assert.Equal(t, first, second)
}

func TestSplit_EmptyDocument(t *testing.T) {
	c, err := New(10, 2)
	require.NoError(t, err)
	assert.Empty(t, c.Split(models.Document{Source: "empty"}))
}

func TestSplit_CarriesSourceAndOrderedIDs(t *testing.T) {
	c, err := New(10, 2)
	require.NoError(t, err)

	chunks := c.Split(models.Document{Source: "crpc.pdf", Content: strings.Repeat("a", 35)})
	for i, chunk := range chunks {
		assert.Equal(t, "crpc.pdf", chunk.Source)
		assert.Equal(t, i, chunk.ChunkID)
	}
}

func TestSplitAll_CombinesDocuments(t *testing.T) {
	c, err := New(10, 0)
	require.NoError(t, err)

	docs := []models.Document{
		{Source: "a.txt", Content: strings.Repeat("a", 15)},
		{Source: "b.txt", Content: strings.Repeat("b", 5)},
	}
	chunks := c.SplitAll(docs)
	require.Len(t, chunks, 3)
	assert.Equal(t, "a.txt", chunks[0].Source)
	assert.Equal(t, "b.txt", chunks[2].Source)
}
