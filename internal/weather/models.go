package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Record is the normalized current-weather view for a country at a point in time.
// It is populated directly by the provider, so downstream consumers work with
// typed fields instead of re-parsing artifact text.
type Record struct {
	Country     string    `json:"country"`
	Location    string    `json:"location"`  // resolved place name, e.g. "Ottawa, CA"
	FetchedAt   time.Time `json:"fetchedAt"` // always UTC
	Temperature float64   `json:"temperatureC"`
	FeelsLike   float64   `json:"feelsLikeC"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeedMs"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description"` // provider's free-text condition, e.g. "light rain"
}

// Coordinates is a geographic point used to query the weather provider.
type Coordinates struct {
	Lat float64
	Lon float64
}
