package rag

import (
	"context"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// chunk is one embedded slice of a document as held by the store.
type chunk struct {
	ID         string
	DocumentID string
	Text       string
	Metadata   map[string]string
	Embedding  []float32
}

// StoreConfig controls chunking and optional snapshot persistence.
type StoreConfig struct {
	ChunkSize    int
	ChunkOverlap int

	// SnapshotPath, when set, makes the store reload its chunks on construction
	// and rewrite the snapshot after every AddDocuments call.
	SnapshotPath string
}

// Store is the vector store adapter: it chunks and embeds added documents and
// answers similarity searches ranked by cosine similarity. It only shapes
// inputs and outputs; embedding is delegated to the Embedder.
type Store struct {
	mu       sync.RWMutex
	chunks   []chunk
	embedder Embedder
	cfg      StoreConfig
}

// NewStore creates a vector store over the given embedder, loading a prior
// snapshot when one is configured and present.
func NewStore(embedder Embedder, cfg StoreConfig) (*Store, error) {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 500
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 200
	}

	s := &Store{
		embedder: embedder,
		cfg:      cfg,
	}

	if cfg.SnapshotPath != "" {
		if err := s.loadSnapshot(cfg.SnapshotPath); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Len returns the number of stored chunks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// AddDocuments chunks, embeds and indexes the given documents. Re-adding a
// document under the same ID replaces its previous chunks, so stable IDs give
// update semantics while generated IDs always insert.
func (s *Store) AddDocuments(ctx context.Context, docs []Document) error {
	var texts []string
	var pending []chunk
	incoming := make(map[string]struct{}, len(docs))

	for _, doc := range docs {
		docID := doc.ID
		if docID == "" {
			docID = uuid.NewString()
		}
		incoming[docID] = struct{}{}
		for _, piece := range ChunkText(doc.Text, s.cfg.ChunkSize, s.cfg.ChunkOverlap) {
			texts = append(texts, piece)
			pending = append(pending, chunk{
				ID:         uuid.NewString(),
				DocumentID: docID,
				Text:       piece,
				Metadata:   doc.Metadata,
			})
		}
	}

	if len(pending) == 0 {
		return nil
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding documents: %w", err)
	}
	if len(vectors) != len(pending) {
		return fmt.Errorf("embedding count mismatch: %d texts, %d vectors", len(pending), len(vectors))
	}
	for i := range pending {
		pending[i].Embedding = vectors[i]
	}

	s.mu.Lock()
	kept := s.chunks[:0:0]
	for _, c := range s.chunks {
		if _, replaced := incoming[c.DocumentID]; !replaced {
			kept = append(kept, c)
		}
	}
	s.chunks = append(kept, pending...)
	s.mu.Unlock()

	if s.cfg.SnapshotPath != "" {
		if err := s.writeSnapshot(s.cfg.SnapshotPath); err != nil {
			return fmt.Errorf("persisting vector snapshot: %w", err)
		}
	}
	return nil
}

// Search embeds the query and returns at most k chunks ordered by descending
// cosine similarity. An empty result set is a valid, non-error outcome.
func (s *Store) Search(ctx context.Context, query string, k int) ([]ScoredDocument, error) {
	if k <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	empty := len(s.chunks) == 0
	s.mu.RUnlock()
	if empty {
		return nil, nil
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]ScoredDocument, 0, len(s.chunks))
	for _, c := range s.chunks {
		results = append(results, ScoredDocument{
			Text:     c.Text,
			Metadata: c.Metadata,
			Score:    cosineSimilarity(queryVec, c.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (s *Store) loadSnapshot(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening vector snapshot: %w", err)
	}
	defer f.Close()

	var chunks []chunk
	if err := gob.NewDecoder(f).Decode(&chunks); err != nil {
		return fmt.Errorf("decoding vector snapshot: %w", err)
	}

	s.mu.Lock()
	s.chunks = chunks
	s.mu.Unlock()
	return nil
}

func (s *Store) writeSnapshot(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "vectors-*.gob")
	if err != nil {
		return err
	}

	s.mu.RLock()
	err = gob.NewEncoder(tmp).Encode(s.chunks)
	s.mu.RUnlock()
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// cosineSimilarity calculates cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
