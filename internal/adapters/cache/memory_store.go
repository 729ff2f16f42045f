// Package cache provides CacheStore adapters backed by process memory or Redis.
package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"farmerassist.app/internal/ports"
	"github.com/newmo-oss/ctxtime"
)

// NamespaceTTLs maps each cache namespace to its time-to-live
type NamespaceTTLs map[ports.CacheNamespace]time.Duration

// Namespaces returns the configured namespaces sorted by name
func (t NamespaceTTLs) Namespaces() []ports.CacheNamespace {
	namespaces := make([]ports.CacheNamespace, 0, len(t))
	for ns := range t {
		namespaces = append(namespaces, ns)
	}
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i] < namespaces[j] })
	return namespaces
}

// isExpired is the single expiry predicate shared by lookups and sweeps
func isExpired(now, storedAt time.Time, ttl time.Duration) bool {
	return now.Sub(storedAt) >= ttl
}

// MemoryStore implements CacheStore with one lock-guarded map per namespace
type MemoryStore struct {
	shards     map[ports.CacheNamespace]*memoryShard
	namespaces []ports.CacheNamespace
}

type memoryShard struct {
	mutex   sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value    []byte
	storedAt time.Time
}

// NewMemoryStore creates an in-memory store for the given namespaces
func NewMemoryStore(ttls NamespaceTTLs) *MemoryStore {
	store := &MemoryStore{
		shards:     make(map[ports.CacheNamespace]*memoryShard, len(ttls)),
		namespaces: ttls.Namespaces(),
	}

	for ns, ttl := range ttls {
		store.shards[ns] = &memoryShard{
			ttl:     ttl,
			entries: make(map[string]memoryEntry),
		}
	}

	return store
}

// Get returns the value stored under key unless it has expired
func (s *MemoryStore) Get(ctx context.Context, ns ports.CacheNamespace, key string) ([]byte, bool) {
	shard, ok := s.shards[ns]
	if !ok {
		return nil, false
	}

	shard.mutex.RLock()
	entry, exists := shard.entries[key]
	shard.mutex.RUnlock()

	if !exists || isExpired(ctxtime.Now(ctx), entry.storedAt, shard.ttl) {
		return nil, false
	}

	return entry.value, true
}

// Put stores value under key, replacing any previous entry
func (s *MemoryStore) Put(ctx context.Context, ns ports.CacheNamespace, key string, value []byte) {
	shard, ok := s.shards[ns]
	if !ok {
		return
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	shard.mutex.Lock()
	defer shard.mutex.Unlock()

	shard.entries[key] = memoryEntry{
		value:    stored,
		storedAt: ctxtime.Now(ctx),
	}
}

// Size returns the raw number of entries held for ns
func (s *MemoryStore) Size(ctx context.Context, ns ports.CacheNamespace) int {
	shard, ok := s.shards[ns]
	if !ok {
		return 0
	}

	shard.mutex.RLock()
	defer shard.mutex.RUnlock()

	return len(shard.entries)
}

// Sweep removes every entry whose age at now has reached its namespace TTL
func (s *MemoryStore) Sweep(ctx context.Context, now time.Time) int {
	evicted := 0

	for _, ns := range s.namespaces {
		shard := s.shards[ns]

		shard.mutex.Lock()
		for key, entry := range shard.entries {
			if isExpired(now, entry.storedAt, shard.ttl) {
				delete(shard.entries, key)
				evicted++
			}
		}
		shard.mutex.Unlock()
	}

	return evicted
}

// TTL returns the time-to-live of ns, or zero for an unknown namespace
func (s *MemoryStore) TTL(ns ports.CacheNamespace) time.Duration {
	if shard, ok := s.shards[ns]; ok {
		return shard.ttl
	}
	return 0
}

// Namespaces returns the namespaces this store partitions entries by
func (s *MemoryStore) Namespaces() []ports.CacheNamespace {
	return append([]ports.CacheNamespace(nil), s.namespaces...)
}
