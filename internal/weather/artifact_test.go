package weather

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatParseRoundTrip(t *testing.T) {
	record := Record{
		Country:     "India",
		Location:    "New Delhi, IN",
		FetchedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Temperature: 31.5,
		FeelsLike:   34.2,
		Humidity:    72,
		WindSpeed:   3.4,
		Condition:   ConditionRain,
		Description: "light rain",
	}

	parsed, err := ParseArtifact(FormatArtifact(record))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if parsed.Temperature != 31.5 {
		t.Errorf("temperature = %v, want 31.5", parsed.Temperature)
	}
	if parsed.Humidity != 72 {
		t.Errorf("humidity = %v, want 72", parsed.Humidity)
	}
	if parsed.Condition != ConditionRain {
		t.Errorf("condition = %v, want rain", parsed.Condition)
	}
	if parsed.Location != "New Delhi, IN" {
		t.Errorf("location = %q", parsed.Location)
	}
	if !parsed.FetchedAt.Equal(record.FetchedAt) {
		t.Errorf("fetchedAt = %v, want %v", parsed.FetchedAt, record.FetchedAt)
	}
}

func TestParseArtifactConditionKeyAndBareSuffix(t *testing.T) {
	text := strings.Join([]string{
		"Temperature: 5C",
		"Humidity: 80%",
		"Condition: Rain",
	}, "\n")

	parsed, err := ParseArtifact(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Temperature != 5 {
		t.Errorf("temperature = %v, want 5", parsed.Temperature)
	}
	if parsed.Humidity != 80 {
		t.Errorf("humidity = %v, want 80", parsed.Humidity)
	}
	if parsed.Condition != ConditionRain {
		t.Errorf("condition = %v, want rain", parsed.Condition)
	}
}

func TestParseArtifactMalformed(t *testing.T) {
	cases := map[string]string{
		"missing temperature": "Humidity: 80%\nWeather: Rain\n",
		"missing humidity":    "Temperature: 5°C\nWeather: Rain\n",
		"missing condition":   "Temperature: 5°C\nHumidity: 80%\n",
		"bad temperature":     "Temperature: warm\nHumidity: 80%\nWeather: Rain\n",
		"bad humidity":        "Temperature: 5°C\nHumidity: high\nWeather: Rain\n",
		"empty":               "",
	}

	for name, text := range cases {
		if _, err := ParseArtifact(text); !errors.Is(err, ErrMalformedArtifact) {
			t.Errorf("%s: got %v, want ErrMalformedArtifact", name, err)
		}
	}
}

func TestMapConditionText(t *testing.T) {
	cases := []struct {
		text string
		want Condition
	}{
		{"light rain", ConditionRain},
		{"Heavy Drizzle", ConditionRain},
		{"clear sky", ConditionClear},
		{"Sunny", ConditionClear},
		{"scattered clouds", ConditionCloudy},
		{"thunderstorm", ConditionStorm},
		{"light snow", ConditionSnow},
		{"mist", ConditionMist},
		{"", ConditionUnknown},
		{"sandstorm nearby", ConditionStorm},
	}

	for _, c := range cases {
		if got := MapConditionText(c.text); got != c.want {
			t.Errorf("MapConditionText(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
