package ports

import (
	"context"
	"time"
)

// WeatherObservation represents current conditions as reported by a provider
type WeatherObservation struct {
	TempC      float64
	Humidity   float64
	WindKph    float64
	Condition  string
	ObservedAt time.Time
}

// ForecastPoint is one entry of a provider's forecast series
type ForecastPoint struct {
	Time      time.Time
	TempC     float64
	Condition string
}

// WeatherSnapshot is the raw provider payload before normalization
type WeatherSnapshot struct {
	Current  WeatherObservation
	Forecast []ForecastPoint
}

// WeatherProvider defines the contract for remote weather data
type WeatherProvider interface {
	GetWeather(ctx context.Context, lat, lng float64) (*WeatherSnapshot, error)
	GetProviderName() string
}
