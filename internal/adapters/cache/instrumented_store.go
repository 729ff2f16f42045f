package cache

import (
	"context"
	"time"

	"farmerassist.app/internal/ports"
)

// LatencyObserver receives the duration of each store operation
type LatencyObserver interface {
	ObserveCacheOperation(cacheType, operation string, duration time.Duration)
}

// InstrumentedStore decorates a CacheStore with per-operation latency reporting
type InstrumentedStore struct {
	ports.CacheStore
	cacheType string
	observer  LatencyObserver
	logger    ports.Logger
}

func NewInstrumentedStore(store ports.CacheStore, cacheType string, observer LatencyObserver, logger ports.Logger) *InstrumentedStore {
	return &InstrumentedStore{
		CacheStore: store,
		cacheType:  cacheType,
		observer:   observer,
		logger:     logger,
	}
}

func (s *InstrumentedStore) measureLatency(operation string, fn func()) {
	start := time.Now()
	fn()
	s.observer.ObserveCacheOperation(s.cacheType, operation, time.Since(start))
}

func (s *InstrumentedStore) Get(ctx context.Context, ns ports.CacheNamespace, key string) ([]byte, bool) {
	var data []byte
	var found bool

	s.measureLatency("get", func() {
		data, found = s.CacheStore.Get(ctx, ns, key)
	})

	if found {
		s.logger.Debug("cache hit", ports.F("namespace", ns.String()), ports.F("key", key))
	} else {
		s.logger.Debug("cache miss", ports.F("namespace", ns.String()), ports.F("key", key))
	}

	return data, found
}

func (s *InstrumentedStore) Put(ctx context.Context, ns ports.CacheNamespace, key string, value []byte) {
	s.measureLatency("put", func() {
		s.CacheStore.Put(ctx, ns, key, value)
	})
	s.logger.Debug("cache put", ports.F("namespace", ns.String()), ports.F("key", key))
}

func (s *InstrumentedStore) Sweep(ctx context.Context, now time.Time) int {
	var evicted int
	s.measureLatency("sweep", func() {
		evicted = s.CacheStore.Sweep(ctx, now)
	})
	return evicted
}

// Ping forwards to the wrapped store when it holds a remote connection
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	if pinger, ok := s.CacheStore.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// Close forwards to the wrapped store when it owns a connection
func (s *InstrumentedStore) Close() error {
	if closer, ok := s.CacheStore.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
