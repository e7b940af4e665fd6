package config

import (
	"testing"
	"time"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "GROQ_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestResolveLLMPrefersOpenAI(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-1")
	t.Setenv("GROQ_API_KEY", "gq-1")

	llm := resolveLLM()
	if llm.Provider != "openai" {
		t.Fatalf("provider = %q, want openai", llm.Provider)
	}
	if llm.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want default", llm.Model)
	}
}

func TestResolveLLMFallsBackToGroqThenGemini(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GROQ_API_KEY", "gq-1")
	if llm := resolveLLM(); llm.Provider != "groq" {
		t.Fatalf("provider = %q, want groq", llm.Provider)
	}

	clearLLMEnv(t)
	t.Setenv("GOOGLE_API_KEY", "gg-1")
	llm := resolveLLM()
	if llm.Provider != "gemini" {
		t.Fatalf("provider = %q, want gemini", llm.Provider)
	}
	if llm.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q, want default", llm.Model)
	}
}

func TestResolveLLMNoKeys(t *testing.T) {
	clearLLMEnv(t)
	if llm := resolveLLM(); llm.APIKey != "" {
		t.Fatalf("expected empty config, got %+v", llm)
	}
}

func TestHasEmbeddingWithChatOnlyProvider(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("EMBEDDING_API_KEY", "")
	t.Setenv("EMBEDDING_BASE_URL", "")
	t.Setenv("GROQ_API_KEY", "gq-1")
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.HasLLM() {
		t.Fatal("HasLLM should be true with a Groq key")
	}
	if cfg.HasEmbedding() {
		t.Error("HasEmbedding should be false: a Groq key carries no embeddings endpoint")
	}

	t.Setenv("EMBEDDING_BASE_URL", "http://localhost:11434/v1")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.HasEmbedding() {
		t.Error("HasEmbedding should be true with EMBEDDING_BASE_URL set")
	}
}

func TestEmbeddingKeyDefaultsToOpenAI(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("EMBEDDING_API_KEY", "")
	t.Setenv("EMBEDDING_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "sk-1")
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Embedding.APIKey != "sk-1" {
		t.Errorf("embedding key = %q, want the OpenAI key", cfg.Embedding.APIKey)
	}
	if !cfg.HasEmbedding() {
		t.Error("HasEmbedding should be true when OPENAI_API_KEY is set")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("COUNTRIES", "India, Japan ,")
	t.Setenv("FETCH_INTERVAL", "")
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(cfg.Countries) != 2 || cfg.Countries[0] != "India" || cfg.Countries[1] != "Japan" {
		t.Errorf("countries = %v", cfg.Countries)
	}
	if cfg.FetchInterval != 15*time.Minute {
		t.Errorf("interval = %v, want 15m", cfg.FetchInterval)
	}
	if cfg.TopK != 3 || cfg.ChunkSize != 500 || cfg.ChunkOverlap != 200 {
		t.Errorf("retrieval defaults = %d/%d/%d", cfg.TopK, cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.HasLLM() {
		t.Error("HasLLM should be false without keys")
	}
}
