package providers

import (
	"fmt"
	"strings"

	"github.com/kelvins/geocoder"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
)

// capitalOverrides pins countries whose names geocode poorly (or ambiguously)
// to their capital's coordinates.
var capitalOverrides = map[string]weather.Coordinates{
	"canada": {Lat: 45.4215, Lon: -75.6972},  // Ottawa
	"brazil": {Lat: -15.7801, Lon: -47.9292}, // Brasilia
	"niger":  {Lat: 13.5137, Lon: 2.1098},    // Niamey
	"palau":  {Lat: 7.5000, Lon: 134.6241},   // Ngerulmud
}

// GoogleGeocoder resolves country names to coordinates via the Google
// geocoding API (github.com/kelvins/geocoder).
type GoogleGeocoder struct{}

// NewGoogleGeocoder configures the geocoder package with the given API key.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{}
}

// Locate returns coordinates for a country, preferring the override table.
func (g *GoogleGeocoder) Locate(country string) (weather.Coordinates, error) {
	if c, ok := capitalOverrides[strings.ToLower(strings.TrimSpace(country))]; ok {
		return c, nil
	}

	loc, err := geocoder.Geocoding(geocoder.Address{Country: country})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %s: %v", weather.ErrUnknownCountry, country, err)
	}

	return weather.Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}
