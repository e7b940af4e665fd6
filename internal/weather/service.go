package weather

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Service orchestrates fetching current weather and persisting per-country
// artifacts through the keyed artifact store.
type Service struct {
	provider  Provider
	artifacts ArtifactWriter
}

// NewService creates a new Service.
func NewService(provider Provider, artifacts ArtifactWriter) *Service {
	return &Service{
		provider:  provider,
		artifacts: artifacts,
	}
}

// Fetch retrieves current weather for a country and writes its text artifact.
// Repeated calls always hit the provider; the artifact is overwritten each time.
func (s *Service) Fetch(ctx context.Context, country string) (Record, error) {
	if s.provider == nil {
		return Record{}, fmt.Errorf("no weather provider configured")
	}

	record, err := s.provider.Fetch(ctx, country)
	if err != nil {
		return Record{}, err
	}

	if err := s.artifacts.Write(country, FormatArtifact(record)); err != nil {
		return Record{}, fmt.Errorf("saving artifact for %s: %w", country, err)
	}

	return record, nil
}

// FetchAll refreshes artifacts for every country concurrently. Individual
// failures are logged and skipped; the successfully refreshed countries are
// returned.
func (s *Service) FetchAll(ctx context.Context, countries []string) []string {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		updated []string
	)

	for _, country := range countries {
		country := country
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := s.Fetch(ctx, country); err != nil {
				log.Printf("weather fetch failed for %s: %v", country, err)
				return
			}

			mu.Lock()
			updated = append(updated, country)
			mu.Unlock()
		}()
	}

	wg.Wait()
	return updated
}
