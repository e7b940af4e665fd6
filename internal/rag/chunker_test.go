package rag

import (
	"strings"
	"testing"
)

func TestChunkTextShortInputSingleChunk(t *testing.T) {
	chunks := ChunkText("short text", 500, 200)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Fatalf("chunks = %v", chunks)
	}
}

func TestChunkTextEmpty(t *testing.T) {
	if chunks := ChunkText("   \n ", 500, 200); chunks != nil {
		t.Fatalf("chunks = %v, want nil", chunks)
	}
}

func TestChunkTextRespectsSize(t *testing.T) {
	text := strings.Repeat("word ", 300)
	chunks := ChunkText(text, 100, 20)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		// A word plus separator may straddle the boundary, nothing more.
		if len(c) > 110 {
			t.Errorf("chunk %d is %d chars, exceeds max size", i, len(c))
		}
	}
}

func TestChunkTextOverlapCarriesContext(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta ", 50)
	chunks := ChunkText(text, 100, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Every chunk after the first must start with the tail of its predecessor.
	for i := 1; i < len(chunks); i++ {
		prevTail := chunks[i-1][len(chunks[i-1])-10:]
		if !strings.Contains(chunks[i][:40], strings.TrimSpace(prevTail)) {
			t.Errorf("chunk %d does not overlap with its predecessor", i)
		}
	}
}

func TestChunkTextNoWordLoss(t *testing.T) {
	text := strings.Repeat("one two three four five ", 40)
	chunks := ChunkText(text, 80, 0)

	joined := strings.Fields(strings.Join(chunks, " "))
	original := strings.Fields(text)
	if len(joined) != len(original) {
		t.Fatalf("chunking lost words: %d vs %d", len(joined), len(original))
	}
}
