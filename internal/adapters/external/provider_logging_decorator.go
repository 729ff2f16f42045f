package external

import (
	"context"
	"time"

	"farmerassist.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetWeather(ctx context.Context, lat, lng float64) (*ports.WeatherSnapshot, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lng", lng),
		ports.F("event", "request"))

	startTime := time.Now()
	snapshot, err := d.provider.GetWeather(ctx, lat, lng)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("lat", lat),
			ports.F("lng", lng),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lng", lng),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if snapshot != nil {
		fields = append(fields,
			ports.F("temperature", snapshot.Current.TempC),
			ports.F("condition", snapshot.Current.Condition),
			ports.F("forecast_points", len(snapshot.Forecast)))
	}
	d.logger.Info("Weather API request completed", fields...)

	return snapshot, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// MandiProviderLoggingDecorator decorates market price providers with structured logging
type MandiProviderLoggingDecorator struct {
	provider ports.MandiProvider
	logger   ports.Logger
}

// NewMandiProviderLoggingDecorator creates a new logging decorator for market price providers
func NewMandiProviderLoggingDecorator(provider ports.MandiProvider, logger ports.Logger) ports.MandiProvider {
	return &MandiProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetPrices wraps the provider call with structured logging
func (d *MandiProviderLoggingDecorator) GetPrices(ctx context.Context, query ports.MandiQuery) ([]ports.MandiRecord, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Mandi API request started",
		ports.F("provider", providerName),
		ports.F("state", query.State),
		ports.F("district", query.District),
		ports.F("commodity", query.Commodity),
		ports.F("event", "request"))

	startTime := time.Now()
	records, err := d.provider.GetPrices(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Mandi API request failed",
			ports.F("provider", providerName),
			ports.F("commodity", query.Commodity),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Mandi API request completed",
		ports.F("provider", providerName),
		ports.F("commodity", query.Commodity),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("records", len(records)))

	return records, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *MandiProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}
