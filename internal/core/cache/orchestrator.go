// Package cache implements the fetch-or-serve policy in front of remote
// collaborators and the periodic sweep of expired cache entries.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// Source tells where a served value came from
type Source string

const (
	SourceCache    Source = "cache"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Outcome labels recorded per orchestration
const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Integration describes one remote collaborator fronted by the cache.
type Integration[P any, R any] struct {
	Name      string
	Namespace ports.CacheNamespace
	// Timeout bounds a single remote fetch. Zero leaves the caller's deadline in place.
	Timeout time.Duration
	// Validate rejects requests before any cache or remote interaction.
	Validate func(params P) error
	// Key must be deterministic over the semantic parameters of a validated request.
	Key func(params P) string
	// Fetch calls the remote collaborator and returns the normalized value.
	Fetch func(ctx context.Context, params P) (R, error)
	// Fallback synthesizes a value from the request alone. When nil, remote
	// failures are returned to the caller instead.
	Fallback func(params P) R
}

// Result is a served value along with its origin
type Result[R any] struct {
	Value  R
	Source Source
	// FetchErr holds the remote failure that triggered a fallback.
	FetchErr error
}

// Dependencies holds collaborators shared by all orchestrators
type Dependencies struct {
	Store   ports.CacheStore
	Logger  ports.Logger
	Metrics ports.CacheMetrics
	// Coalesce lets at most one remote fetch per key run at a time; concurrent
	// misses for the same key wait for and share its result.
	Coalesce bool
}

// Orchestrator decides whether to serve from cache, fetch and store, or fall back.
type Orchestrator[P any, R any] struct {
	integration Integration[P, R]
	store       ports.CacheStore
	logger      ports.Logger
	metrics     ports.CacheMetrics
	coalesce    bool
	inflight    singleflight.Group
}

// NewOrchestrator creates an orchestrator for a single integration
func NewOrchestrator[P any, R any](integration Integration[P, R], deps Dependencies) (*Orchestrator[P, R], error) {
	if integration.Name == "" {
		return nil, errors.NewValidationError("integration name is required")
	}
	if integration.Namespace == "" {
		return nil, errors.NewValidationError("integration namespace is required")
	}
	if integration.Validate == nil || integration.Key == nil || integration.Fetch == nil {
		return nil, errors.NewValidationError("integration validate, key and fetch functions are required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("cache store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Orchestrator[P, R]{
		integration: integration,
		store:       deps.Store,
		logger:      deps.Logger,
		metrics:     metrics,
		coalesce:    deps.Coalesce,
	}, nil
}

// Name returns the integration name
func (o *Orchestrator[P, R]) Name() string {
	return o.integration.Name
}

// Serve returns a cached value, a freshly fetched one, or a fallback.
// The only errors returned are validation failures and, for integrations
// without a fallback, remote failures.
func (o *Orchestrator[P, R]) Serve(ctx context.Context, params P) (*Result[R], error) {
	if err := o.integration.Validate(params); err != nil {
		return nil, err
	}

	key := o.integration.Key(params)

	if value, ok := o.lookup(ctx, key); ok {
		o.metrics.RecordOutcome(o.integration.Name, OutcomeHit)
		o.logger.Debug("Serving from cache",
			ports.F("integration", o.integration.Name),
			ports.F("key", key))
		return &Result[R]{Value: value, Source: SourceCache}, nil
	}

	o.metrics.RecordOutcome(o.integration.Name, OutcomeMiss)

	value, err := o.fetch(ctx, key, params)
	if err == nil {
		return &Result[R]{Value: value, Source: SourceRemote}, nil
	}

	if o.integration.Fallback == nil {
		o.metrics.RecordOutcome(o.integration.Name, OutcomeError)
		o.logger.Error("Remote fetch failed",
			ports.F("integration", o.integration.Name),
			ports.F("key", key),
			ports.F("error", err.Error()))
		return nil, err
	}

	o.metrics.RecordOutcome(o.integration.Name, OutcomeFallback)
	o.logger.Warn("Remote fetch failed, serving fallback",
		ports.F("integration", o.integration.Name),
		ports.F("key", key),
		ports.F("error", err.Error()))

	return &Result[R]{
		Value:    o.integration.Fallback(params),
		Source:   SourceFallback,
		FetchErr: err,
	}, nil
}

func (o *Orchestrator[P, R]) lookup(ctx context.Context, key string) (R, bool) {
	var value R

	data, ok := o.store.Get(ctx, o.integration.Namespace, key)
	if !ok {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		o.logger.Warn("Discarding undecodable cache entry",
			ports.F("integration", o.integration.Name),
			ports.F("key", key),
			ports.F("error", err.Error()))
		var zero R
		return zero, false
	}

	return value, true
}

func (o *Orchestrator[P, R]) fetch(ctx context.Context, key string, params P) (R, error) {
	if !o.coalesce {
		return o.fetchAndStore(ctx, key, params)
	}

	// The shared fetch outlives any single caller; each caller waits on its own ctx.
	shared := o.inflight.DoChan(key, func() (interface{}, error) {
		return o.fetchAndStore(context.WithoutCancel(ctx), key, params)
	})

	select {
	case res := <-shared:
		if res.Err != nil {
			var zero R
			return zero, res.Err
		}
		value, _ := res.Val.(R)
		return value, nil
	case <-ctx.Done():
		var zero R
		return zero, ClassifyRemoteError(ctx, o.integration.Name, ctx.Err())
	}
}

func (o *Orchestrator[P, R]) fetchAndStore(ctx context.Context, key string, params P) (R, error) {
	fetchCtx := ctx
	if o.integration.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, o.integration.Timeout)
		defer cancel()
	}

	start := time.Now()
	value, err := o.integration.Fetch(fetchCtx, params)
	o.metrics.RecordFetch(o.integration.Name, err == nil, time.Since(start))

	if err != nil {
		var zero R
		return zero, ClassifyRemoteError(fetchCtx, o.integration.Name, err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		o.logger.Warn("Failed to encode value for cache",
			ports.F("integration", o.integration.Name),
			ports.F("key", key),
			ports.F("error", err.Error()))
		return value, nil
	}

	o.store.Put(ctx, o.integration.Namespace, key, data)
	return value, nil
}

// ClassifyRemoteError maps any remote call failure onto the remote error taxonomy.
// callCtx is the context the call ran under, so its own deadline reads as a timeout.
func ClassifyRemoteError(callCtx context.Context, name string, err error) error {
	if callCtx.Err() == context.DeadlineExceeded {
		return errors.NewRemoteUnavailableError(name+" request timed out", err)
	}
	if errors.IsRemoteError(err) {
		return err
	}
	return errors.NewRemoteUnavailableError(name+" request failed", err)
}

type noopMetrics struct{}

func (noopMetrics) RecordOutcome(string, string) {}
func (noopMetrics) RecordFetch(string, bool, time.Duration) {}
func (noopMetrics) RecordSweep(int) {}
func (noopMetrics) SetEntries(ports.CacheNamespace, int) {}
