// Package chunker splits document text into overlapping fixed-size passages
// suitable for independent retrieval.
package chunker

import (
	"fmt"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// Chunker produces deterministic, ordered, overlapping character chunks.
// Consecutive chunks share exactly Overlap trailing/leading characters.
type Chunker struct {
	size    int
	overlap int
}

// New validates the (size, overlap) configuration. Overlap must be smaller
// than size so the chunk sequence always advances.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split covers the document's full text with ordered chunks. Same inputs
// always produce the same sequence; an empty document produces no chunks.
func (c *Chunker) Split(doc models.Document) []models.Chunk {
	runes := []rune(doc.Content)
	if len(runes) == 0 {
		return nil
	}

	step := c.size - c.overlap
	var chunks []models.Chunk
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, models.Chunk{
			Content: string(runes[start:end]),
			Source:  doc.Source,
			ChunkID: len(chunks),
		})
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// SplitAll chunks a batch of documents in order.
func (c *Chunker) SplitAll(docs []models.Document) []models.Chunk {
	var chunks []models.Chunk
	for _, doc := range docs {
		chunks = append(chunks, c.Split(doc)...)
	}
	return chunks
}
