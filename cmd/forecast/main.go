// Command forecast drives the weather fetch path: it refreshes any configured
// countries, then reads country names from standard input, fetching and
// printing the stored artifact for each. Type "quit" to exit.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/artifact"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/config"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.OpenWeatherAPIKey == "" {
		fmt.Println("No weather API key configured. Set OPENWEATHER_API_KEY in your environment or .env file.")
		os.Exit(1)
	}

	artifacts, err := artifact.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open artifact store: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	geo := providers.NewGoogleGeocoder(cfg.GeocoderAPIKey)
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, geo)
	svc := weather.NewService(provider, artifacts)

	if len(cfg.Countries) > 0 {
		fmt.Printf("Refreshing %d configured countries...\n", len(cfg.Countries))
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		updated := svc.FetchAll(ctx, cfg.Countries)
		cancel()
		fmt.Printf("Refreshed %d/%d countries.\n", len(updated), len(cfg.Countries))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter country name or 'quit' to exit: ")
		if !scanner.Scan() {
			break
		}
		country := strings.TrimSpace(scanner.Text())
		if country == "" {
			continue
		}
		if strings.EqualFold(country, "quit") {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		record, err := svc.Fetch(ctx, country)
		cancel()
		if err != nil {
			printFetchError(country, err)
			continue
		}

		fmt.Println()
		fmt.Print(weather.FormatArtifact(record))
		fmt.Printf("Saved forecast for %s to %s\n\n", country, artifacts.Path(country))
	}
}

func printFetchError(country string, err error) {
	switch {
	case errors.Is(err, weather.ErrNoAPIKey):
		fmt.Println("Weather provider is not configured. Set OPENWEATHER_API_KEY in your .env file.")
	case errors.Is(err, weather.ErrUnknownCountry):
		fmt.Printf("Could not find weather data for %q. Check the country name.\n", country)
	default:
		fmt.Printf("Failed to fetch weather for %s: %v\n", country, err)
	}
}
