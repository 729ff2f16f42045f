package ports

import (
	"context"
	"time"
)

// CacheNamespace identifies a logical partition of the response cache.
// Each namespace carries its own TTL.
type CacheNamespace string

const (
	NamespaceTranslation CacheNamespace = "translation"
	NamespaceWeather     CacheNamespace = "weather"
	NamespaceMandi       CacheNamespace = "mandi"
)

// String returns the namespace name
func (n CacheNamespace) String() string {
	return string(n)
}

// AllNamespaces lists every namespace in a stable order.
func AllNamespaces() []CacheNamespace {
	return []CacheNamespace{NamespaceTranslation, NamespaceWeather, NamespaceMandi}
}

// CacheStore defines the contract for the namespaced TTL response cache.
//
// The current time for Get and Put is read from ctx (ctxtime), so expiry can be
// pinned in tests. An entry is expired once now - storedAt >= TTL; Get never
// returns an expired entry and Sweep removes exactly those entries.
// None of the operations fail from the caller's point of view.
type CacheStore interface {
	Get(ctx context.Context, ns CacheNamespace, key string) ([]byte, bool)
	Put(ctx context.Context, ns CacheNamespace, key string, value []byte)
	// Size is a raw count including expired entries that were not swept yet.
	Size(ctx context.Context, ns CacheNamespace) int
	// Sweep evicts expired entries across all namespaces and returns how many were removed.
	Sweep(ctx context.Context, now time.Time) int
	TTL(ns CacheNamespace) time.Duration
	Namespaces() []CacheNamespace
}

// CacheMetrics defines the contract for cache and orchestration tracking
type CacheMetrics interface {
	RecordOutcome(integration, outcome string)
	RecordFetch(integration string, success bool, duration time.Duration)
	RecordSweep(evicted int)
	SetEntries(ns CacheNamespace, entries int)
}
