package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manosmj/RAG-Assistant-for-Travel-Advisory/internal/weather"
)

type fixedGeocoder struct {
	coords weather.Coordinates
	err    error
}

func (f *fixedGeocoder) Locate(country string) (weather.Coordinates, error) {
	if f.err != nil {
		return weather.Coordinates{}, f.err
	}
	return f.coords, nil
}

const openWeatherPayload = `{
	"name": "Ottawa",
	"dt": 1767100800,
	"sys": {"country": "CA"},
	"main": {"temp": -3.5, "feels_like": -8.0, "humidity": 70},
	"wind": {"speed": 5.1},
	"weather": [{"main": "Snow", "description": "light snow"}]
}`

func TestOpenWeatherFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test-key" {
			t.Errorf("missing api key in request: %s", r.URL.RawQuery)
		}
		if r.URL.Query().Get("units") != "metric" {
			t.Errorf("expected metric units: %s", r.URL.RawQuery)
		}
		w.Write([]byte(openWeatherPayload))
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(server.Client(), "test-key", &fixedGeocoder{coords: weather.Coordinates{Lat: 45.4, Lon: -75.7}})
	p.baseURL = server.URL

	record, err := p.Fetch(context.Background(), "Canada")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if record.Temperature != -3.5 {
		t.Errorf("temperature = %v", record.Temperature)
	}
	if record.Humidity != 70 {
		t.Errorf("humidity = %v", record.Humidity)
	}
	if record.Condition != weather.ConditionSnow {
		t.Errorf("condition = %v", record.Condition)
	}
	if record.Location != "Ottawa, CA" {
		t.Errorf("location = %q", record.Location)
	}
	if record.Description != "light snow" {
		t.Errorf("description = %q", record.Description)
	}
}

func TestOpenWeatherFetchWithoutKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "", &fixedGeocoder{})

	if _, err := p.Fetch(context.Background(), "Canada"); !errors.Is(err, weather.ErrNoAPIKey) {
		t.Fatalf("got %v, want ErrNoAPIKey", err)
	}
}

func TestOpenWeatherFetchUnknownCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	p := NewOpenWeatherProvider(server.Client(), "test-key", &fixedGeocoder{})
	p.baseURL = server.URL

	if _, err := p.Fetch(context.Background(), "Atlantis"); !errors.Is(err, weather.ErrUnknownCountry) {
		t.Fatalf("got %v, want ErrUnknownCountry", err)
	}
}

func TestOpenWeatherFetchGeocodeFailure(t *testing.T) {
	geoErr := &fixedGeocoder{err: weather.ErrUnknownCountry}
	p := NewOpenWeatherProvider(http.DefaultClient, "test-key", geoErr)

	if _, err := p.Fetch(context.Background(), "Nowhere"); !errors.Is(err, weather.ErrUnknownCountry) {
		t.Fatalf("got %v, want ErrUnknownCountry", err)
	}
}

func TestCapitalOverrides(t *testing.T) {
	g := NewGoogleGeocoder("")

	coords, err := g.Locate("Canada")
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if coords.Lat != 45.4215 || coords.Lon != -75.6972 {
		t.Errorf("coords = %+v, want Ottawa", coords)
	}
}
