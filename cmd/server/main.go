package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/advisor"
	httpapi "github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/api/http"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/artifact"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/config"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/rag"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/scheduler"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	artifacts, err := artifact.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open artifact store: %v", err)
	}

	geo := providers.NewGoogleGeocoder(cfg.GeocoderAPIKey)
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, geo)
	weatherSvc := weather.NewService(provider, artifacts)

	deps := httpapi.Deps{
		Weather:   weatherSvc,
		Artifacts: artifacts,
		Advisor:   advisor.NewGenerator(artifacts),
	}

	// Assistant wiring is optional: without LLM and embedding credentials the
	// weather and advisory endpoints still work.
	var reindexer scheduler.Reindexer
	switch {
	case !cfg.HasLLM():
		log.Printf("INFO: no LLM API key configured; assistant endpoints disabled")
	case !cfg.HasEmbedding():
		log.Printf("INFO: no embedding credentials configured; assistant endpoints disabled. " +
			"Groq and Gemini keys cover chat only; set EMBEDDING_API_KEY or EMBEDDING_BASE_URL")
	default:
		reindexer = wireAssistant(cfg, artifacts, &deps)
	}

	// Scheduler that periodically refreshes configured countries.
	sched := scheduler.New(cfg.Countries, cfg.FetchInterval, weatherSvc, reindexer)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "travel-advisory",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2 * time.Minute, // assistant calls wait on the LLM
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "travel-advisory",
		})
	})

	httpapi.RegisterRoutes(app, deps)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// wireAssistant builds the retrieval and generation stack. Any failure here
// only disables the assistant endpoints; the rest of the server stays up.
func wireAssistant(cfg *config.AppConfig, artifacts *artifact.Store, deps *httpapi.Deps) scheduler.Reindexer {
	embedder, err := rag.NewEmbedder(cfg.Embedding)
	if err != nil {
		log.Printf("INFO: assistant endpoints disabled: %v", err)
		return nil
	}
	vectors, err := rag.NewStore(embedder, rag.StoreConfig{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
		SnapshotPath: cfg.VectorSnapshotPath(),
	})
	if err != nil {
		log.Printf("INFO: assistant endpoints disabled, vector store unavailable: %v", err)
		return nil
	}
	llm, err := rag.NewChatService(cfg.LLM)
	if err != nil {
		log.Printf("INFO: assistant endpoints disabled, LLM client unavailable: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	n, err := rag.IngestArtifacts(ctx, vectors, artifacts)
	cancel()
	if err != nil {
		log.Printf("initial artifact ingest failed: %v", err)
	} else {
		log.Printf("INFO: ingested %d weather artifacts into the vector store", n)
	}

	deps.Assistant = rag.NewAssistant(llm, vectors, rag.RAGPromptTemplate, cfg.TopK)
	deps.WeatherAssistant = rag.NewWeatherAssistant(llm, artifacts)
	return &rag.Indexer{Store: vectors, Source: artifacts}
}
