package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"farmerassist.app/internal/config"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/go-redis/redis/v8"
	"github.com/newmo-oss/ctxtime"
)

const redisScanCount = 100

// RedisStore implements CacheStore on top of Redis.
// Entries carry their own storedAt so expiry follows the same predicate as
// the memory store; the Redis key TTL only bounds memory.
type RedisStore struct {
	client     *redis.Client
	prefix     string
	ttls       NamespaceTTLs
	namespaces []ports.CacheNamespace
	logger     ports.Logger
}

type redisEnvelope struct {
	Value    []byte    `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

// NewRedisStore connects to Redis and creates a store for the given namespaces
func NewRedisStore(cfg *config.RedisConfig, ttls NamespaceTTLs, logger ports.Logger) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if logger == nil {
		return nil, errors.NewConfigurationError("logger cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewRemoteUnavailableError("failed to connect to Redis", err)
	}

	return &RedisStore{
		client:     client,
		prefix:     cfg.KeyPrefix,
		ttls:       ttls,
		namespaces: ttls.Namespaces(),
		logger:     logger,
	}, nil
}

func (r *RedisStore) redisKey(ns ports.CacheNamespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, ns, key)
}

func (r *RedisStore) pattern(ns ports.CacheNamespace) string {
	return fmt.Sprintf("%s:%s:*", r.prefix, ns)
}

// Get returns the value stored under key unless it has expired
func (r *RedisStore) Get(ctx context.Context, ns ports.CacheNamespace, key string) ([]byte, bool) {
	ttl, ok := r.ttls[ns]
	if !ok {
		return nil, false
	}

	envelope, ok := r.read(ctx, r.redisKey(ns, key))
	if !ok || isExpired(ctxtime.Now(ctx), envelope.StoredAt, ttl) {
		return nil, false
	}

	return envelope.Value, true
}

// Put stores value under key, replacing any previous entry
func (r *RedisStore) Put(ctx context.Context, ns ports.CacheNamespace, key string, value []byte) {
	ttl, ok := r.ttls[ns]
	if !ok {
		return
	}

	data, err := json.Marshal(redisEnvelope{Value: value, StoredAt: ctxtime.Now(ctx)})
	if err != nil {
		r.logger.Warn("Failed to encode cache entry", ports.F("namespace", ns.String()), ports.F("key", key), ports.F("error", err.Error()))
		return
	}

	if err := r.client.Set(ctx, r.redisKey(ns, key), data, ttl).Err(); err != nil {
		r.logger.Warn("Redis set operation failed", ports.F("namespace", ns.String()), ports.F("key", key), ports.F("error", err.Error()))
	}
}

// Size returns the raw number of keys held for ns
func (r *RedisStore) Size(ctx context.Context, ns ports.CacheNamespace) int {
	if _, ok := r.ttls[ns]; !ok {
		return 0
	}

	count := 0
	iter := r.client.Scan(ctx, 0, r.pattern(ns), redisScanCount).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		r.logger.Warn("Redis scan failed", ports.F("namespace", ns.String()), ports.F("error", err.Error()))
	}

	return count
}

// Sweep removes every entry whose age at now has reached its namespace TTL
func (r *RedisStore) Sweep(ctx context.Context, now time.Time) int {
	evicted := 0

	for _, ns := range r.namespaces {
		ttl := r.ttls[ns]

		var expired []string
		iter := r.client.Scan(ctx, 0, r.pattern(ns), redisScanCount).Iterator()
		for iter.Next(ctx) {
			redisKey := iter.Val()
			envelope, ok := r.read(ctx, redisKey)
			if !ok || isExpired(now, envelope.StoredAt, ttl) {
				expired = append(expired, redisKey)
			}
		}
		if err := iter.Err(); err != nil {
			r.logger.Warn("Redis scan failed", ports.F("namespace", ns.String()), ports.F("error", err.Error()))
			continue
		}

		if len(expired) == 0 {
			continue
		}

		removed, err := r.client.Del(ctx, expired...).Result()
		if err != nil {
			r.logger.Warn("Redis delete operation failed", ports.F("namespace", ns.String()), ports.F("error", err.Error()))
			continue
		}
		evicted += int(removed)
	}

	return evicted
}

// TTL returns the time-to-live of ns, or zero for an unknown namespace
func (r *RedisStore) TTL(ns ports.CacheNamespace) time.Duration {
	return r.ttls[ns]
}

// Namespaces returns the namespaces this store partitions entries by
func (r *RedisStore) Namespaces() []ports.CacheNamespace {
	return append([]ports.CacheNamespace(nil), r.namespaces...)
}

// Ping checks if Redis connection is alive
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewRemoteUnavailableError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewRemoteUnavailableError("failed to close Redis connection", err)
	}
	return nil
}

// read loads and decodes an envelope; a missing or corrupt key reads as absent
func (r *RedisStore) read(ctx context.Context, redisKey string) (redisEnvelope, bool) {
	var envelope redisEnvelope

	data, err := r.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("Redis get operation failed", ports.F("key", redisKey), ports.F("error", err.Error()))
		}
		return envelope, false
	}

	if err := json.Unmarshal(data, &envelope); err != nil {
		r.logger.Warn("Discarding corrupt Redis cache entry", ports.F("key", redisKey), ports.F("error", err.Error()))
		return envelope, false
	}

	return envelope, true
}
