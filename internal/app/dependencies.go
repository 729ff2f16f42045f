package app

import (
	"io"
	"log/slog"
	"os"

	cachestore "farmerassist.app/internal/adapters/cache"
	"farmerassist.app/internal/adapters/external"
	"farmerassist.app/internal/adapters/infrastructure"
	"farmerassist.app/internal/config"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
)

type DependencyContainer struct {
	config  *config.Config
	logger  ports.Logger
	store   ports.CacheStore
	metrics *infrastructure.PrometheusMetrics
	ports   *ports.ApplicationPorts
	closers []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config cannot be nil", nil)
	}

	container := &DependencyContainer{
		config:  cfg,
		metrics: infrastructure.NewPrometheusMetrics(),
	}

	container.initializeLogger()

	if err := container.initializeCache(); err != nil {
		return nil, err
	}

	container.initializePorts()
	return container, nil
}

func (c *DependencyContainer) initializeLogger() {
	stdout := infrastructure.NewSlogLoggerAdapter(os.Stdout, c.config.Logging.Level)
	c.logger = stdout

	if c.config.Logging.FilePath == "" {
		return
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, c.config.Logging.Level)
	if err != nil {
		slog.Warn("Failed to create file logger, logging to stdout only", "error", err)
		return
	}

	c.logger = infrastructure.NewMultiLogger(stdout, fileLogger)
	c.closers = append(c.closers, fileLogger)
	slog.Info("File logging enabled", "path", c.config.Logging.FilePath)
}

func (c *DependencyContainer) initializeCache() error {
	store, err := cachestore.NewStoreFactory(c.logger).CreateStore(&c.config.Cache)
	if err != nil {
		c.logger.Error("Failed to create cache store", ports.F("error", err.Error()))
		return err
	}

	c.store = cachestore.NewInstrumentedStore(store, c.config.Cache.Type.String(), c.metrics, c.logger)

	c.logger.Info("Cache store initialized",
		ports.F("type", c.config.Cache.Type.String()),
		ports.F("translation_ttl", c.config.Cache.TranslationTTL.String()),
		ports.F("weather_ttl", c.config.Cache.WeatherTTL.String()),
		ports.F("mandi_ttl", c.config.Cache.MandiTTL.String()))
	return nil
}

func (c *DependencyContainer) initializePorts() {
	cfg := c.config

	var weatherProvider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.APIURL,
		Logger:  c.logger,
	})

	var mandiProvider ports.MandiProvider = external.NewAgmarknetProviderAdapter(external.AgmarknetProviderParams{
		APIKey:     cfg.Mandi.APIKey,
		BaseURL:    cfg.Mandi.APIURL,
		ResourceID: cfg.Mandi.ResourceID,
		Logger:     c.logger,
	})

	weatherHealth := infrastructure.NewRemoteIntegrationHealthChecker(weatherProvider.GetProviderName(), cfg.Weather.APIURL, cfg.Weather.APIKey, true)
	mandiHealth := infrastructure.NewRemoteIntegrationHealthChecker(mandiProvider.GetProviderName(), cfg.Mandi.APIURL, cfg.Mandi.APIKey, true)

	if cfg.Logging.ProviderCalls {
		weatherProvider = external.NewWeatherProviderLoggingDecorator(weatherProvider, c.logger)
		mandiProvider = external.NewMandiProviderLoggingDecorator(mandiProvider, c.logger)
	}

	translationProvider := external.NewTranslationProviderAdapter(external.LanguageServiceParams{
		APIKey:  cfg.Translation.APIKey,
		BaseURL: cfg.Translation.APIURL,
		Logger:  c.logger,
	})

	speechProvider := external.NewSpeechProviderAdapter(external.LanguageServiceParams{
		APIKey:  cfg.Translation.APIKey,
		BaseURL: cfg.Translation.TTSAPIURL,
		Logger:  c.logger,
	})

	c.ports = &ports.ApplicationPorts{
		// Cache
		CacheStore:   c.store,
		CacheMetrics: c.metrics,

		// Remote collaborators
		WeatherProvider:     weatherProvider,
		MandiProvider:       mandiProvider,
		TranslationProvider: translationProvider,
		SpeechProvider:      speechProvider,

		// Infrastructure
		Logger: c.logger,
		Health: []ports.HealthChecker{
			infrastructure.NewCacheHealthChecker(c.store, cfg.Cache.Type.String()),
			weatherHealth,
			mandiHealth,
			infrastructure.NewRemoteIntegrationHealthChecker("translation", cfg.Translation.APIURL, cfg.Translation.APIKey, false),
			infrastructure.NewRemoteIntegrationHealthChecker("tts", cfg.Translation.TTSAPIURL, cfg.Translation.APIKey, false),
		},
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus registry wrapper shared by the cache and HTTP layers
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

// Cleanup releases the cache backend connection and the log file, if any.
// It returns the first error encountered but always attempts every close.
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if closer, ok := c.store.(io.Closer); ok {
		firstErr = closer.Close()
	}

	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	return firstErr
}
