// Command assistant drives the travel-advisory query loop. It ingests the
// stored weather artifacts into the vector store, then answers from stdin:
//
//	ask <question>       retrieval-augmented answer over stored artifacts
//	weather <country>    LLM analysis of one country's raw weather artifact
//	advisory <country>   deterministic rule-based advisory (no LLM)
//	quit                 exit
//
// A bare line is treated as "ask".
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/advisor"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/artifact"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/config"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/rag"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if !cfg.HasLLM() {
		fmt.Println("No LLM API key found. Set one of the following in your .env file:")
		fmt.Println("- OPENAI_API_KEY (OpenAI GPT models)")
		fmt.Println("- GROQ_API_KEY (Groq Llama models)")
		fmt.Println("- GOOGLE_API_KEY (Google Gemini models)")
		fmt.Println("With GROQ_API_KEY or GOOGLE_API_KEY, also set EMBEDDING_API_KEY or")
		fmt.Println("EMBEDDING_BASE_URL; those providers have no embeddings endpoint.")
		os.Exit(1)
	}
	if !cfg.HasEmbedding() {
		fmt.Println("No embedding credentials found. Retrieval needs an OpenAI-compatible")
		fmt.Println("embeddings endpoint. Set one of the following in your .env file:")
		fmt.Println("- EMBEDDING_API_KEY (defaults to OPENAI_API_KEY when that is set)")
		fmt.Println("- EMBEDDING_BASE_URL (any OpenAI-compatible endpoint, e.g. local Ollama)")
		os.Exit(1)
	}

	artifacts, err := artifact.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open artifact store: %v", err)
	}

	embedder, err := rag.NewEmbedder(cfg.Embedding)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}
	vectors, err := rag.NewStore(embedder, rag.StoreConfig{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
		SnapshotPath: cfg.VectorSnapshotPath(),
	})
	if err != nil {
		log.Fatalf("failed to open vector store: %v", err)
	}
	llm, err := rag.NewChatService(cfg.LLM)
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}

	fmt.Println("Loading weather documents...")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	n, err := rag.IngestArtifacts(ctx, vectors, artifacts)
	cancel()
	if err != nil {
		log.Printf("artifact ingest failed: %v", err)
	}
	fmt.Printf("Loaded %d weather documents.\n\n", n)

	assistant := rag.NewAssistant(llm, vectors, rag.RAGPromptTemplate, cfg.TopK)
	weatherAssistant := rag.NewWeatherAssistant(llm, artifacts)
	ruleAdvisor := advisor.NewGenerator(artifacts)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter a question ('ask ...', 'weather <country>', 'advisory <country>') or 'quit' to exit: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") {
			break
		}

		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var answer string
		var err error

		reqCtx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		switch strings.ToLower(command) {
		case "weather":
			answer, err = weatherAssistant.Advise(reqCtx, rest)
		case "advisory":
			answer, err = ruleAdvisor.Generate(rest)
		case "ask":
			answer, err = assistant.Answer(reqCtx, rest, nil)
		default:
			answer, err = assistant.Answer(reqCtx, line, nil)
		}
		cancel()

		if err != nil {
			printAssistantError(err)
			continue
		}
		fmt.Println("\n" + answer + "\n")
	}
}

func printAssistantError(err error) {
	switch {
	case errors.Is(err, artifact.ErrNoData):
		fmt.Println("No weather data for that country yet. Run the forecast command for it first.")
	case errors.Is(err, weather.ErrMalformedArtifact):
		fmt.Printf("The stored weather data is malformed: %v\n", err)
	case errors.Is(err, rag.ErrRetrieval):
		fmt.Printf("Search failed: %v\n", err)
	case errors.Is(err, rag.ErrGeneration):
		fmt.Printf("The language model call failed: %v\n", err)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}
