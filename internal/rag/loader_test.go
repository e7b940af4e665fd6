package rag

import (
	"context"
	"sort"
	"strings"
	"testing"
)

type fakeArtifactSource struct {
	texts map[string]string
}

func (f *fakeArtifactSource) List() ([]string, error) {
	keys := make([]string, 0, len(f.texts))
	for k := range f.texts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *fakeArtifactSource) Read(country string) (string, error) {
	return f.texts[country], nil
}

func TestIngestArtifactsTagsDocumentsByCountry(t *testing.T) {
	store := newTestStore(t)
	source := &fakeArtifactSource{texts: map[string]string{
		"japan":  "mild and clear in japan",
		"norway": "rainy and windy in norway",
	}}

	n, err := IngestArtifacts(context.Background(), store, source)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("ingested %d documents, want 2", n)
	}

	results, err := store.Search(context.Background(), "rainy windy", 1)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].Metadata["country"] != "norway" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestReindexKeepsIndexBounded(t *testing.T) {
	store := newTestStore(t)
	source := &fakeArtifactSource{texts: map[string]string{
		"japan":  "mild and clear in japan",
		"norway": "rainy and windy in norway",
	}}
	ix := &Indexer{Store: store, Source: source}

	for i := 0; i < 3; i++ {
		if err := ix.Reindex(context.Background()); err != nil {
			t.Fatalf("reindex %d failed: %v", i, err)
		}
	}
	if store.Len() != 2 {
		t.Fatalf("store has %d chunks after repeated reindexing, want 2", store.Len())
	}

	// A refreshed artifact shows its new content after the next reindex.
	source.texts["japan"] = "typhoon warning issued for japan"
	if err := ix.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex failed: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("store has %d chunks, want 2", store.Len())
	}
	results, err := store.Search(context.Background(), "typhoon warning", 1)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || !strings.Contains(results[0].Text, "typhoon") {
		t.Fatalf("unexpected results after refresh: %+v", results)
	}
}
