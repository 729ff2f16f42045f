package cache

import (
	"context"
	"time"

	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/newmo-oss/ctxtime"
)

// Sweeper periodically evicts expired entries from a cache store
type Sweeper struct {
	store    ports.CacheStore
	logger   ports.Logger
	metrics  ports.CacheMetrics
	interval time.Duration
}

// SweeperConfig holds configuration for creating a sweeper
type SweeperConfig struct {
	Store    ports.CacheStore
	Logger   ports.Logger
	Metrics  ports.CacheMetrics
	Interval time.Duration
}

// NewSweeper creates a new sweeper
func NewSweeper(config SweeperConfig) (*Sweeper, error) {
	if config.Store == nil {
		return nil, errors.NewValidationError("cache store is required")
	}
	if config.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if config.Interval <= 0 {
		return nil, errors.NewValidationError("sweep interval must be positive")
	}

	metrics := config.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Sweeper{
		store:    config.Store,
		logger:   config.Logger,
		metrics:  metrics,
		interval: config.Interval,
	}, nil
}

// Run sweeps once per interval until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("Cache sweeper started", ports.F("interval", s.interval.String()))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Cache sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce evicts expired entries as of the current time and returns the eviction count
func (s *Sweeper) SweepOnce(ctx context.Context) (evicted int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Cache sweep panicked", ports.F("panic", r))
			evicted = 0
		}
	}()

	evicted = s.store.Sweep(ctx, ctxtime.Now(ctx))
	s.metrics.RecordSweep(evicted)

	fields := []ports.Field{ports.F("evicted", evicted)}
	for _, ns := range s.store.Namespaces() {
		size := s.store.Size(ctx, ns)
		s.metrics.SetEntries(ns, size)
		fields = append(fields, ports.F(ns.String(), size))
	}

	s.logger.Info("Cache sweep completed", fields...)
	return evicted
}
