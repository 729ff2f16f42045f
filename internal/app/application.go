package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"farmerassist.app/internal/adapters/api"
	"farmerassist.app/internal/adapters/infrastructure"
	"farmerassist.app/internal/config"
	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/catalog"
	"farmerassist.app/internal/core/mandi"
	"farmerassist.app/internal/core/translation"
	"farmerassist.app/internal/core/weather"
	"farmerassist.app/internal/ports"
	"github.com/gin-gonic/gin"
)

type Application struct {
	config    *config.Config
	container *DependencyContainer

	// Use Cases
	weatherUseCase     *weather.UseCase
	mandiUseCase       *mandi.UseCase
	translationUseCase *translation.UseCase
	catalogService     *catalog.Service
	sweeper            *cache.Sweeper

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports *ports.ApplicationPorts

	// sweeperMu guards the sweeper lifecycle fields; Start and Shutdown run on different goroutines
	sweeperMu      sync.Mutex
	stopSweeper    context.CancelFunc
	sweeperDone    chan struct{}
	sweeperStopped bool
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	container, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, container)
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.ports.Logger.Info("Initializing use cases...")

	cacheDeps := cache.Dependencies{
		Store:    a.ports.CacheStore,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.CacheMetrics,
		Coalesce: a.config.Cache.CoalesceFetch,
	}

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: a.ports.WeatherProvider,
		Cache:    cacheDeps,
		Timeout:  a.config.Weather.Timeout,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	mandiUseCase, err := mandi.NewUseCase(mandi.UseCaseDependencies{
		Provider: a.ports.MandiProvider,
		Cache:    cacheDeps,
		Timeout:  a.config.Mandi.Timeout,
		Defaults: mandi.Defaults{
			State:    a.config.Mandi.DefaultState,
			District: a.config.Mandi.DefaultDistrict,
			Crop:     a.config.Mandi.DefaultCrop,
			Limit:    a.config.Mandi.DefaultLimit,
			MaxLimit: a.config.Mandi.MaxLimit,
		},
	})
	if err != nil {
		return fmt.Errorf("create mandi use case: %w", err)
	}
	a.mandiUseCase = mandiUseCase

	translationUseCase, err := translation.NewUseCase(translation.UseCaseDependencies{
		Translator:    a.ports.TranslationProvider,
		Speech:        a.ports.SpeechProvider,
		Cache:         cacheDeps,
		Timeout:       a.config.Translation.Timeout,
		SpeechTimeout: a.config.Translation.TTSTimeout,
		Defaults: translation.Defaults{
			SourceLang: a.config.Translation.DefaultSource,
			TargetLang: a.config.Translation.DefaultTarget,
			Voice:      a.config.Translation.DefaultVoice,
		},
	})
	if err != nil {
		return fmt.Errorf("create translation use case: %w", err)
	}
	a.translationUseCase = translationUseCase

	catalogService, err := catalog.NewService(a.ports.Logger)
	if err != nil {
		return fmt.Errorf("create catalog service: %w", err)
	}
	a.catalogService = catalogService

	sweeper, err := cache.NewSweeper(cache.SweeperConfig{
		Store:    a.ports.CacheStore,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.CacheMetrics,
		Interval: a.config.Cache.SweepInterval,
	})
	if err != nil {
		return fmt.Errorf("create cache sweeper: %w", err)
	}
	a.sweeper = sweeper

	a.ports.Logger.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	a.ports.Logger.Info("Initializing adapters...")

	if !strings.EqualFold(a.config.Logging.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := a.container.Metrics()

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:           a.config.Server.Port,
			ServiceName:    a.config.Server.ServiceName,
			AllowedOrigins: a.config.Server.CORSAllowedOrigins,
		},
		WeatherUseCase:     a.weatherUseCase,
		MandiUseCase:       a.mandiUseCase,
		TranslationUseCase: a.translationUseCase,
		CatalogService:     a.catalogService,
		Health:             infrastructure.NewSystemHealthChecker(a.ports.Health...),
		Store:              a.ports.CacheStore,
		Logger:             a.ports.Logger,
		Metrics:            metrics,
		MetricsHandler:     metrics.Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.ports.Logger.Info("Adapters initialized successfully")
	return nil
}

// Start runs the cache sweeper in the background and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application...")

	a.startSweeper(ctx)

	a.ports.Logger.Info("Starting HTTP server", ports.F("port", a.config.Server.Port))
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.sweeperMu.Lock()
	defer a.sweeperMu.Unlock()

	if a.sweeperStopped || a.stopSweeper != nil {
		return
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.stopSweeper = cancel
	a.sweeperDone = done

	go func() {
		defer close(done)
		a.sweeper.Run(sweepCtx)
	}()
}

// haltSweeper cancels the sweeper and prevents later starts. The returned channel
// is nil when the sweeper never started.
func (a *Application) haltSweeper() <-chan struct{} {
	a.sweeperMu.Lock()
	defer a.sweeperMu.Unlock()

	a.sweeperStopped = true
	if a.stopSweeper == nil {
		return nil
	}
	a.stopSweeper()
	return a.sweeperDone
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Info("Shutting down application...")

	if done := a.haltSweeper(); done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			a.ports.Logger.Warn("Cache sweeper did not stop before shutdown deadline")
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.container.Cleanup(); err != nil {
		a.ports.Logger.Warn("Error closing cache store", ports.F("error", err.Error()))
	}

	a.ports.Logger.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
