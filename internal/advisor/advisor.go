// Package advisor generates deterministic, rule-based travel advisories from
// parsed weather artifacts. No LLM is involved: given identical artifact
// content the output is byte-identical.
package advisor

import (
	"fmt"
	"strings"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
)

// ArtifactReader is the read side of the keyed artifact store.
type ArtifactReader interface {
	Read(country string) (string, error)
}

// Generator composes advisories from stored artifacts.
type Generator struct {
	artifacts ArtifactReader
}

// NewGenerator creates a Generator over the artifact store.
func NewGenerator(artifacts ArtifactReader) *Generator {
	return &Generator{artifacts: artifacts}
}

// Generate reads and parses the country's artifact and applies the decision
// table. Missing artifacts surface as the store's ErrNoData; malformed ones as
// weather.ErrMalformedArtifact.
func (g *Generator) Generate(country string) (string, error) {
	text, err := g.artifacts.Read(country)
	if err != nil {
		return "", err
	}

	record, err := weather.ParseArtifact(text)
	if err != nil {
		return "", err
	}

	return Compose(country, record), nil
}

// Compose applies the fixed decision table to a parsed record and renders the
// multi-section advisory text.
func Compose(country string, r weather.Record) string {
	var clothing, activities, precautions []string

	// Temperature bands.
	switch {
	case r.Temperature > 30:
		clothing = append(clothing, "light cotton clothes", "sun hat", "sunglasses")
		activities = append(activities, "indoor activities during peak hours", "early morning sightseeing")
		precautions = append(precautions, "stay hydrated")
	case r.Temperature < 15:
		clothing = append(clothing, "warm jacket", "layers", "thermal wear")
		activities = append(activities, "outdoor activities during sunny hours")
		precautions = append(precautions, "carry warm beverages")
	}

	// Condition keywords.
	switch r.Condition {
	case weather.ConditionRain, weather.ConditionStorm:
		clothing = append(clothing, "raincoat/umbrella")
		activities = append(activities, "indoor cultural activities")
		precautions = append(precautions, "check local weather updates")
	case weather.ConditionSnow:
		clothing = append(clothing, "waterproof boots")
		precautions = append(precautions, "check road conditions before travelling")
	case weather.ConditionClear:
		activities = append(activities, "outdoor sightseeing", "photography")
	}

	// Humidity.
	if r.Humidity > 70 {
		precautions = append(precautions, "carry personal fan/cooling items")
		clothing = append(clothing, "moisture-wicking fabrics")
	}

	updated := "Not specified"
	if !r.FetchedAt.IsZero() {
		updated = r.FetchedAt.UTC().Format("2006-01-02 15:04:05")
	}
	location := r.Location
	if location == "" {
		location = "Not specified"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Travel Advisory for %s\n\n", country)
	sb.WriteString("Current Weather Conditions:\n")
	sb.WriteString("-------------------------\n")
	fmt.Fprintf(&sb, "Location: %s\n", location)
	fmt.Fprintf(&sb, "Temperature: %.1f°C\n", r.Temperature)
	fmt.Fprintf(&sb, "Weather: %s\n", r.Description)
	fmt.Fprintf(&sb, "Wind Speed: %.1f m/s\n", r.WindSpeed)
	fmt.Fprintf(&sb, "Humidity: %.0f%%\n\n", r.Humidity)
	sb.WriteString("Travel Recommendations:\n")
	sb.WriteString("---------------------\n")
	fmt.Fprintf(&sb, "Suggested Clothing: %s\n\n", joinOrNone(clothing))
	fmt.Fprintf(&sb, "Recommended Activities: %s\n\n", joinOrNone(activities))
	fmt.Fprintf(&sb, "Precautions: %s\n\n", joinOrNone(precautions))
	fmt.Fprintf(&sb, "Weather data last updated: %s\n\n", updated)
	sb.WriteString("Note: This is a general advisory based on current weather conditions. Please check local forecasts and travel guidelines before making plans.\n")
	return sb.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "no special recommendations"
	}
	return strings.Join(items, ", ")
}
