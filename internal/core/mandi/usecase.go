package mandi

import (
	"context"
	"time"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/newmo-oss/ctxtime"
)

const integrationName = "mandi"

type UseCase struct {
	orchestrator *cache.Orchestrator[PriceQuery, Prices]
	defaults     Defaults
	logger       ports.Logger
}

type UseCaseDependencies struct {
	Provider ports.MandiProvider
	Cache    cache.Dependencies
	Timeout  time.Duration
	Defaults Defaults
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("mandi provider is required")
	}
	if err := deps.Defaults.Validate(); err != nil {
		return nil, err
	}

	orchestrator, err := cache.NewOrchestrator(cache.Integration[PriceQuery, Prices]{
		Name:      integrationName,
		Namespace: ports.NamespaceMandi,
		Timeout:   deps.Timeout,
		Validate:  PriceQuery.Validate,
		Key: func(q PriceQuery) string {
			return cache.Key(q.Key()...)
		},
		Fetch: func(ctx context.Context, q PriceQuery) (Prices, error) {
			records, err := deps.Provider.GetPrices(ctx, ports.MandiQuery{
				State:     q.State,
				District:  q.District,
				Commodity: q.Crop,
				Limit:     q.Limit,
			})
			if err != nil {
				return Prices{}, err
			}
			return Normalize(q, records), nil
		},
		Fallback: Fallback,
	}, deps.Cache)
	if err != nil {
		return nil, err
	}

	return &UseCase{orchestrator: orchestrator, defaults: deps.Defaults, logger: deps.Cache.Logger}, nil
}

// GetPrices serves market prices, from cache when fresh and synthetic when the provider fails
func (uc *UseCase) GetPrices(ctx context.Context, request PriceRequest) (*cache.Result[Prices], error) {
	query, err := request.Resolve(uc.defaults)
	if err != nil {
		return nil, err
	}
	return uc.orchestrator.Serve(ctx, query)
}

// GetTrends returns a synthetic price trend. It is neither cached nor fetched remotely.
func (uc *UseCase) GetTrends(ctx context.Context, request TrendRequest) (*Trend, error) {
	trend, err := BuildTrend(request, uc.defaults.State, ctxtime.Now(ctx))
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Price trend generated", ports.F("crop", trend.Crop), ports.F("state", trend.State), ports.F("days", trend.Days))
	return &trend, nil
}
