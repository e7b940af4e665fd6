// Package rag implements the retrieval-augmented assistant: a vector store
// adapter over an embedding service, an LLM backend, and one configurable
// assistant that covers both the retrieval path and the direct prompt-fill path.
package rag

import (
	"context"
	"errors"
)

var (
	// ErrNoProvider is returned when no LLM API key is configured.
	ErrNoProvider = errors.New("no LLM provider configured")

	// ErrRetrieval wraps vector store failures during assistant invocation.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration wraps LLM call failures or unusable responses.
	ErrGeneration = errors.New("generation failed")
)

// Document is a unit of text added to the vector store, with source metadata.
// Documents are immutable once added; re-ingesting a country's artifact inserts
// fresh chunks under a new document ID.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]string
}

// ScoredDocument is one retrieval result: a stored chunk and its relevance score.
type ScoredDocument struct {
	Text     string
	Metadata map[string]string
	Score    float64
}

// Embedder generates vector embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Retriever is the search side of the vector store adapter.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]ScoredDocument, error)
}

// Message is a chat message sent to the LLM backend.
type Message struct {
	Role    string // system, user, assistant
	Content string
}

// ChatService performs a synchronous chat completion.
type ChatService interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
