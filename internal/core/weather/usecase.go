package weather

import (
	"context"
	"time"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
)

const integrationName = "weather"

type UseCase struct {
	orchestrator *cache.Orchestrator[Request, Report]
	logger       ports.Logger
}

type UseCaseDependencies struct {
	Provider ports.WeatherProvider
	Cache    cache.Dependencies
	Timeout  time.Duration
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}

	orchestrator, err := cache.NewOrchestrator(cache.Integration[Request, Report]{
		Name:      integrationName,
		Namespace: ports.NamespaceWeather,
		Timeout:   deps.Timeout,
		Validate:  Request.Validate,
		Key: func(r Request) string {
			coords, _ := r.Coordinates()
			return cache.Key(coords.Key()...)
		},
		Fetch: func(ctx context.Context, r Request) (Report, error) {
			coords, err := r.Coordinates()
			if err != nil {
				return Report{}, err
			}
			snapshot, err := deps.Provider.GetWeather(ctx, coords.Lat, coords.Lng)
			if err != nil {
				return Report{}, err
			}
			if snapshot == nil {
				return Report{}, errors.NewMalformedRemoteResponseError("weather provider returned no data", nil)
			}
			return Normalize(coords, snapshot), nil
		},
		Fallback: func(r Request) Report {
			coords, _ := r.Coordinates()
			return Fallback(coords)
		},
	}, deps.Cache)
	if err != nil {
		return nil, err
	}

	return &UseCase{orchestrator: orchestrator, logger: deps.Cache.Logger}, nil
}

// GetReport serves current conditions and forecast, from cache when fresh.
// Remote failures never surface; the result then carries a synthetic report.
func (uc *UseCase) GetReport(ctx context.Context, request Request) (*cache.Result[Report], error) {
	return uc.orchestrator.Serve(ctx, request)
}

// GetAlerts returns alerts for the coordinates. It does not call the remote provider.
func (uc *UseCase) GetAlerts(ctx context.Context, request Request) (*Alerts, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	coords, _ := request.Coordinates()
	alerts := BuildAlerts(coords)

	uc.logger.Debug("Weather alerts generated", ports.F("lat", coords.Lat), ports.F("lng", coords.Lng), ports.F("count", len(alerts.Alerts)))
	return &alerts, nil
}
