package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/common"
)

// ErrMalformedArtifact is returned when an artifact is missing required fields
// or carries values that cannot be parsed.
var ErrMalformedArtifact = errors.New("malformed weather artifact")

// artifactTimeLayout is the timestamp format written into artifacts.
const artifactTimeLayout = "2006-01-02 15:04:05"

// FormatArtifact renders a record into the plain-text artifact format:
// a header line followed by "Key: Value" lines. This exact shape is what
// ParseArtifact and the assistants consume.
func FormatArtifact(r Record) string {
	var sb strings.Builder
	sb.WriteString("Weather Forecast\n")
	fmt.Fprintf(&sb, "Generated on: %s\n", r.FetchedAt.UTC().Format(artifactTimeLayout))
	fmt.Fprintf(&sb, "Location: %s\n", r.Location)
	fmt.Fprintf(&sb, "Temperature: %.1f°C\n", r.Temperature)
	fmt.Fprintf(&sb, "Feels Like: %.1f°C\n", r.FeelsLike)
	fmt.Fprintf(&sb, "Humidity: %.0f%%\n", r.Humidity)
	fmt.Fprintf(&sb, "Weather: %s\n", r.Description)
	fmt.Fprintf(&sb, "Wind Speed: %.1f m/s\n", r.WindSpeed)
	return sb.String()
}

// ParseArtifact parses artifact text back into a typed record. Temperature,
// humidity and a condition line are required; everything else is optional.
// Both "Weather" and "Condition" are accepted as the condition key, and
// temperature values may carry a "°C" or bare "C" suffix.
func ParseArtifact(text string) (Record, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	var r Record

	temp, ok := fields["temperature"]
	if !ok {
		return Record{}, fmt.Errorf("%w: missing temperature", ErrMalformedArtifact)
	}
	t, err := parseCelsius(temp)
	if err != nil {
		return Record{}, fmt.Errorf("%w: temperature %q", ErrMalformedArtifact, temp)
	}
	r.Temperature = t

	hum, ok := fields["humidity"]
	if !ok {
		return Record{}, fmt.Errorf("%w: missing humidity", ErrMalformedArtifact)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSuffix(hum, ","), "%"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: humidity %q", ErrMalformedArtifact, hum)
	}
	r.Humidity = h

	desc, ok := fields["weather"]
	if !ok {
		desc, ok = fields["condition"]
	}
	if !ok || desc == "" {
		return Record{}, fmt.Errorf("%w: missing weather condition", ErrMalformedArtifact)
	}
	r.Description = desc
	r.Condition = MapConditionText(desc)

	r.Location = fields["location"]

	if fl, ok := fields["feels like"]; ok {
		if v, err := parseCelsius(fl); err == nil {
			r.FeelsLike = v
		}
	}
	if ws, ok := fields["wind speed"]; ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(ws, "m/s")), 64); err == nil {
			r.WindSpeed = v
		}
	}
	if gen, ok := fields["generated on"]; ok {
		if ts, err := time.Parse(artifactTimeLayout, gen); err == nil {
			r.FetchedAt = ts.UTC()
		}
	}

	return r, nil
}

// parseCelsius strips an optional trailing "°C"/"C" and any trailing comma.
func parseCelsius(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ","))
	s = strings.TrimSuffix(s, "°C")
	s = strings.TrimSuffix(s, "C")
	s = strings.TrimSuffix(s, "°")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// MapConditionText normalizes a provider's free-text condition into a Condition.
func MapConditionText(text string) Condition {
	switch {
	case text == "":
		return ConditionUnknown
	case common.HasAny(text, "rain", "shower", "drizzle"):
		return ConditionRain
	case common.HasAny(text, "snow", "sleet", "blizzard"):
		return ConditionSnow
	case common.HasAny(text, "thunder", "storm"):
		return ConditionStorm
	case common.HasAny(text, "mist", "fog", "haze"):
		return ConditionMist
	case common.HasAny(text, "cloud", "overcast"):
		return ConditionCloudy
	case common.HasAny(text, "sunny", "clear"):
		return ConditionClear
	default:
		return ConditionUnknown
	}
}
