package rag

import (
	"context"
	"fmt"
	"log"
)

// ArtifactSource enumerates stored artifacts and reads their text.
type ArtifactSource interface {
	List() ([]string, error)
	Read(country string) (string, error)
}

// IngestArtifacts loads every stored weather artifact into the vector store as
// a document tagged with its country. The country key doubles as the document
// ID, so re-ingesting an updated artifact replaces its chunks instead of
// piling duplicates into the index. Unreadable artifacts are logged and
// skipped. Returns the number of documents ingested.
func IngestArtifacts(ctx context.Context, store *Store, source ArtifactSource) (int, error) {
	keys, err := source.List()
	if err != nil {
		return 0, fmt.Errorf("listing artifacts: %w", err)
	}

	var docs []Document
	for _, key := range keys {
		text, err := source.Read(key)
		if err != nil {
			log.Printf("skipping artifact %s: %v", key, err)
			continue
		}
		docs = append(docs, Document{
			ID:   key,
			Text: text,
			Metadata: map[string]string{
				"source":  key + "_weather.txt",
				"country": key,
			},
		})
	}

	if len(docs) == 0 {
		return 0, nil
	}

	if err := store.AddDocuments(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Indexer adapts IngestArtifacts for the scheduler. Country-keyed document IDs
// make each reindex replace a country's chunks in place, so the index stays
// bounded by the number of stored artifacts.
type Indexer struct {
	Store  *Store
	Source ArtifactSource
}

func (ix *Indexer) Reindex(ctx context.Context) error {
	_, err := IngestArtifacts(ctx, ix.Store, ix.Source)
	return err
}
