// Package config centralizes every environment lookup into one AppConfig that
// is loaded once in main and handed to components at construction.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/rag"
)

type AppConfig struct {
	// Weather provider.
	OpenWeatherAPIKey string
	GeocoderAPIKey    string

	// Countries refreshed by the scheduler and the forecast CLI.
	Countries []string

	// FetchInterval controls how often the scheduler refreshes each country.
	FetchInterval time.Duration

	// DataDir holds the per-country weather artifacts.
	DataDir string

	// Retrieval settings.
	TopK         int
	ChunkSize    int
	ChunkOverlap int

	LLM       rag.LLMConfig
	Embedding rag.EmbeddingConfig

	HTTPTimeout time.Duration
	Port        string
}

// HasLLM reports whether any LLM API key was found.
func (c *AppConfig) HasLLM() bool {
	return c.LLM.APIKey != ""
}

// HasEmbedding reports whether embedding credentials were found. Groq and
// Gemini chat keys carry no embeddings endpoint, so retrieval additionally
// needs EMBEDDING_API_KEY or EMBEDDING_BASE_URL unless OPENAI_API_KEY is set.
func (c *AppConfig) HasEmbedding() bool {
	return c.Embedding.APIKey != "" || c.Embedding.BaseURL != ""
}

// VectorSnapshotPath is where the vector store persists its chunks.
func (c *AppConfig) VectorSnapshotPath() string {
	return filepath.Join(c.DataDir, "vectors.gob")
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.DataDir = getenvDefault("DATA_DIR", filepath.Join("data", "weather"))

	if countries := os.Getenv("COUNTRIES"); countries != "" {
		for _, c := range strings.Split(countries, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Countries = append(cfg.Countries, c)
			}
		}
	}

	interval, err := time.ParseDuration(getenvDefault("FETCH_INTERVAL", "15m"))
	if err != nil {
		return nil, err
	}
	cfg.FetchInterval = interval

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	cfg.TopK = getenvInt("TOP_K", 3)
	cfg.ChunkSize = getenvInt("CHUNK_SIZE", 500)
	cfg.ChunkOverlap = getenvInt("CHUNK_OVERLAP", 200)

	cfg.LLM = resolveLLM()
	cfg.Embedding = rag.EmbeddingConfig{
		APIKey:  getenvDefault("EMBEDDING_API_KEY", os.Getenv("OPENAI_API_KEY")),
		BaseURL: os.Getenv("EMBEDDING_BASE_URL"),
		Model:   getenvDefault("EMBEDDING_MODEL", "text-embedding-3-small"),
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// resolveLLM picks the chat backend by API-key presence, in order of
// preference: OpenAI, Groq, Google Gemini.
func resolveLLM() rag.LLMConfig {
	switch {
	case os.Getenv("OPENAI_API_KEY") != "":
		return rag.LLMConfig{
			Provider: "openai",
			APIKey:   os.Getenv("OPENAI_API_KEY"),
			Model:    getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		}
	case os.Getenv("GROQ_API_KEY") != "":
		return rag.LLMConfig{
			Provider: "groq",
			APIKey:   os.Getenv("GROQ_API_KEY"),
			Model:    getenvDefault("GROQ_MODEL", "llama-3.1-8b-instant"),
		}
	case os.Getenv("GOOGLE_API_KEY") != "":
		return rag.LLMConfig{
			Provider: "gemini",
			APIKey:   os.Getenv("GOOGLE_API_KEY"),
			Model:    getenvDefault("GOOGLE_MODEL", "gemini-2.0-flash"),
		}
	default:
		return rag.LLMConfig{}
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
