// Package vectordb wraps chromem-go as the searchable vector index over
// document chunks. A Store is built once at startup and queried read-only;
// concurrent searches need no locking.
package vectordb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// ErrNoChunks is returned when an index build is attempted with no usable
// chunks. An empty index cannot serve retrieval, so this must be escalated
// rather than silently producing a useless store.
var ErrNoChunks = errors.New("no chunks to index")

// EmbeddingFunc turns one text into its vector representation. It must be
// deterministic for a fixed model identifier.
type EmbeddingFunc = chromem.EmbeddingFunc

const compress = false

// Store is an immutable-after-build vector index over chunks.
type Store struct {
	db         *chromem.DB
	collection *chromem.Collection
	name       string
}

// Build embeds all chunks and assembles an in-memory index.
func Build(ctx context.Context, chunks []models.Chunk, name string, embedFn EmbeddingFunc) (*Store, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("failed to build index: %w", ErrNoChunks)
	}

	db := chromem.NewDB()
	collection, err := db.GetOrCreateCollection(name, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %v", err)
	}

	docs := make([]chromem.Document, 0, len(chunks))
	for _, chunk := range chunks {
		docs = append(docs, chromem.Document{
			ID:      fmt.Sprintf("%s-%d", chunk.Source, chunk.ChunkID),
			Content: chunk.Content,
			Metadata: map[string]string{
				"source":   chunk.Source,
				"chunk_id": strconv.Itoa(chunk.ChunkID),
			},
		})
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("failed to add documents: %v", err)
	}

	return &Store{db: db, collection: collection, name: name}, nil
}

// Save serializes the index to path, creating parent directories as needed.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := s.db.ExportToFile(path, compress, "", s.name); err != nil {
		return fmt.Errorf("failed to export index: %v", err)
	}
	return nil
}

// Load restores a previously saved index. The embedding function must be
// the one the index was built with; loading with a different one is a
// caller error and is not detected here.
func Load(path, name string, embedFn EmbeddingFunc) (*Store, error) {
	db := chromem.NewDB()
	if err := db.ImportFromFile(path, ""); err != nil {
		return nil, fmt.Errorf("failed to import index: %v", err)
	}
	collection := db.GetCollection(name, embedFn)
	if collection == nil {
		return nil, fmt.Errorf("collection %q not found in %s", name, path)
	}
	return &Store{db: db, collection: collection, name: name}, nil
}

// Search returns up to k chunks ranked by descending similarity to the
// query text. The index is not mutated.
func (s *Store) Search(ctx context.Context, query string, k int) ([]models.Chunk, error) {
	if k <= 0 {
		return nil, nil
	}
	if count := s.collection.Count(); k > count {
		k = count
	}

	results, err := s.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %v", err)
	}

	chunks := make([]models.Chunk, 0, len(results))
	for _, res := range results {
		chunkID, _ := strconv.Atoi(res.Metadata["chunk_id"])
		chunks = append(chunks, models.Chunk{
			Content: res.Content,
			Source:  res.Metadata["source"],
			ChunkID: chunkID,
		})
	}
	return chunks, nil
}

// Count reports how many chunks the index holds.
func (s *Store) Count() int {
	return s.collection.Count()
}
