package cache

import (
	"testing"
	"time"

	"farmerassist.app/internal/config"
	"farmerassist.app/internal/mocks"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFactory_CreateStore(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	tests := []struct {
		name      string
		config    *config.CacheConfig
		wantType  interface{}
		errorType errors.ErrorType
	}{
		{
			name:      "NilConfig",
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name:     "Memory",
			config:   &config.CacheConfig{Type: config.CacheTypeMemory, TranslationTTL: time.Hour, WeatherTTL: time.Minute, MandiTTL: time.Hour},
			wantType: &MemoryStore{},
		},
		{
			name:     "Redis",
			config:   &config.CacheConfig{Type: config.CacheTypeRedis, TranslationTTL: time.Hour, WeatherTTL: time.Minute, MandiTTL: time.Hour, Redis: *redisConfig},
			wantType: &RedisStore{},
		},
		{
			name:      "Unknown",
			config:    &config.CacheConfig{Type: config.CacheTypeUnknown},
			errorType: errors.ErrorTypeConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := NewStoreFactory(mocks.NewLogger(t))

			store, err := factory.CreateStore(tt.config)

			if tt.errorType != errors.ErrorTypeUnknown {
				assert.Nil(t, store)
				assert.Equal(t, tt.errorType, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, store)
			assert.Equal(t, time.Minute, store.TTL(ports.NamespaceWeather))
			if closer, ok := store.(*RedisStore); ok {
				assert.NoError(t, closer.Close())
			}
		})
	}
}
