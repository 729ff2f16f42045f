package cache

import (
	"fmt"

	"farmerassist.app/internal/config"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
)

// TTLsFromConfig maps each namespace to its configured time-to-live
func TTLsFromConfig(cfg *config.CacheConfig) NamespaceTTLs {
	return NamespaceTTLs{
		ports.NamespaceTranslation: cfg.TranslationTTL,
		ports.NamespaceWeather:     cfg.WeatherTTL,
		ports.NamespaceMandi:       cfg.MandiTTL,
	}
}

type StoreFactory struct {
	logger ports.Logger
}

func NewStoreFactory(logger ports.Logger) *StoreFactory {
	return &StoreFactory{logger: logger}
}

// CreateStore builds the store selected by cfg.Type
func (f *StoreFactory) CreateStore(cfg *config.CacheConfig) (ports.CacheStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	ttls := TTLsFromConfig(cfg)

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryStore(ttls), nil
	case config.CacheTypeRedis:
		return NewRedisStore(&cfg.Redis, ttls, f.logger)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
