package cache

import (
	"context"
	"testing"
	"time"

	"farmerassist.app/internal/config"
	"farmerassist.app/internal/mocks"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		KeyPrefix:    "test",
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mockRedis, cfg := setupMockRedis(t)
	store, err := NewRedisStore(cfg, testTTLs(), mocks.AllowAnyLogs(mocks.NewLogger(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, mockRedis
}

func TestNewRedisStore(t *testing.T) {
	tests := []struct {
		name      string
		config    func(t *testing.T) *config.RedisConfig
		errorType errors.ErrorType
	}{
		{
			name:      "NilConfig",
			config:    func(t *testing.T) *config.RedisConfig { return nil },
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
		},
		{
			name: "UnreachableServer",
			config: func(t *testing.T) *config.RedisConfig {
				mockRedis, cfg := setupMockRedis(t)
				mockRedis.Close()
				return cfg
			},
			errorType: errors.ErrorTypeRemoteUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewRedisStore(tt.config(t), testTTLs(), mocks.NewLogger(t))

			if tt.errorType == errors.ErrorTypeUnknown {
				require.NoError(t, err)
				require.NotNil(t, store)
				assert.NoError(t, store.Ping(context.Background()))
				assert.NoError(t, store.Close())
				return
			}

			assert.Nil(t, store)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.errorType, appErr.Type)
		})
	}
}

func TestRedisStore_PutAndGet(t *testing.T) {
	store, mockRedis := newTestRedisStore(t)
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)

	store.Put(ctx, ports.NamespaceMandi, "punjab|ludhiana|wheat", []byte(`[{"price":2275}]`))

	value, ok := store.Get(ctx, ports.NamespaceMandi, "punjab|ludhiana|wheat")
	require.True(t, ok)
	assert.JSONEq(t, `[{"price":2275}]`, string(value))

	assert.True(t, mockRedis.Exists("test:mandi:punjab|ludhiana|wheat"))
	assert.Equal(t, time.Hour, mockRedis.TTL("test:mandi:punjab|ludhiana|wheat"))

	_, ok = store.Get(ctx, ports.NamespaceWeather, "punjab|ludhiana|wheat")
	assert.False(t, ok)
}

func TestRedisStore_ExpiryFollowsStoredAt(t *testing.T) {
	store, _ := newTestRedisStore(t)
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)

	store.Put(ctx, ports.NamespaceWeather, "k", []byte("v"))

	ctxtimetest.SetFixedNow(t, ctx, base.Add(29*time.Minute))
	_, ok := store.Get(ctx, ports.NamespaceWeather, "k")
	assert.True(t, ok)

	ctxtimetest.SetFixedNow(t, ctx, base.Add(30*time.Minute))
	_, ok = store.Get(ctx, ports.NamespaceWeather, "k")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceWeather))
}

func TestRedisStore_Sweep(t *testing.T) {
	store, mockRedis := newTestRedisStore(t)
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)

	store.Put(ctx, ports.NamespaceWeather, "w1", []byte("v"))
	store.Put(ctx, ports.NamespaceMandi, "m1", []byte("v"))
	require.NoError(t, mockRedis.Set("test:weather:corrupt", "not-json"))
	require.NoError(t, mockRedis.Set("other:weather:foreign", "kept"))

	evicted := store.Sweep(ctx, base.Add(31*time.Minute))

	assert.Equal(t, 2, evicted)
	assert.Zero(t, store.Size(ctx, ports.NamespaceWeather))
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceMandi))
	assert.True(t, mockRedis.Exists("other:weather:foreign"))
}

func TestRedisStore_NamespacesAndTTL(t *testing.T) {
	store, _ := newTestRedisStore(t)

	assert.Equal(t, []ports.CacheNamespace{
		ports.NamespaceMandi,
		ports.NamespaceTranslation,
		ports.NamespaceWeather,
	}, store.Namespaces())
	assert.Equal(t, 24*time.Hour, store.TTL(ports.NamespaceTranslation))
	assert.Zero(t, store.TTL("unknown"))
}

func TestRedisStore_UnavailableServerReadsAsMiss(t *testing.T) {
	store, mockRedis := newTestRedisStore(t)
	ctx := fixedClock(t, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))

	store.Put(ctx, ports.NamespaceWeather, "k", []byte("v"))
	mockRedis.Close()

	_, ok := store.Get(ctx, ports.NamespaceWeather, "k")
	assert.False(t, ok)
	assert.Error(t, store.Ping(ctx))
}
