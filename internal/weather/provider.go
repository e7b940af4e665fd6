package weather

import (
	"context"
	"errors"
)

var (
	// ErrNoAPIKey is returned when the weather provider has no API key configured.
	ErrNoAPIKey = errors.New("weather api key is not configured")

	// ErrUnknownCountry is returned when the provider or geocoder does not recognize the country.
	ErrUnknownCountry = errors.New("unknown country")
)

// Provider abstracts a current-weather data source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, country string) (Record, error)
}

// Geocoder resolves a country name to representative coordinates.
type Geocoder interface {
	Locate(country string) (Coordinates, error)
}

// ArtifactWriter is the contract the keyed artifact store must satisfy for the
// weather service. Writes for the same country must be serialized by the store.
type ArtifactWriter interface {
	Write(country, text string) error
}
