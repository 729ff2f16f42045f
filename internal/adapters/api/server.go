// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"net/http"
	"time"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/catalog"
	"farmerassist.app/internal/core/mandi"
	"farmerassist.app/internal/core/translation"
	"farmerassist.app/internal/core/weather"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port           int
	ServiceName    string
	AllowedOrigins []string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router             *gin.Engine
	config             ServerConfig
	weatherUseCase     WeatherUseCase
	mandiUseCase       MandiUseCase
	translationUseCase TranslationUseCase
	catalogService     CatalogService
	health             HealthReporter
	store              ports.CacheStore
	logger             ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetReport(ctx context.Context, request weather.Request) (*cache.Result[weather.Report], error)
	GetAlerts(ctx context.Context, request weather.Request) (*weather.Alerts, error)
}

type MandiUseCase interface {
	GetPrices(ctx context.Context, request mandi.PriceRequest) (*cache.Result[mandi.Prices], error)
	GetTrends(ctx context.Context, request mandi.TrendRequest) (*mandi.Trend, error)
}

type TranslationUseCase interface {
	Translate(ctx context.Context, request translation.Request) (*cache.Result[translation.Result], error)
	Synthesize(ctx context.Context, request translation.SpeechRequest) (*translation.Speech, error)
}

type CatalogService interface {
	Profile(ctx context.Context) catalog.Profile
	Tasks(ctx context.Context) catalog.TaskList
	MarkTask(ctx context.Context, mark catalog.TaskMark) (*catalog.TaskMarkResult, error)
	Policies(ctx context.Context, query catalog.PolicyQuery) catalog.PolicyResults
	Leaderboard(ctx context.Context, scope, id string) catalog.Leaderboard
	DetectDisease(ctx context.Context) catalog.DiseaseReport
}

type HealthReporter interface {
	CheckAll(ctx context.Context) map[string]ports.HealthStatus
}

// RequestObserver records per-route request metrics
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config             ServerConfig
	WeatherUseCase     WeatherUseCase
	MandiUseCase       MandiUseCase
	TranslationUseCase TranslationUseCase
	CatalogService     CatalogService
	Health             HealthReporter
	Store              ports.CacheStore
	Logger             ports.Logger
	// Optional
	Metrics        RequestObserver
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), dropOversizedRequestID(), requestIDMiddleware(), corsMiddleware(opts.Config.AllowedOrigins), requestLogger(opts.Logger))
	if opts.Metrics != nil {
		router.Use(requestMetrics(opts.Metrics))
	}

	server := &HTTPServerAdapter{
		router:             router,
		config:             opts.Config,
		weatherUseCase:     opts.WeatherUseCase,
		mandiUseCase:       opts.MandiUseCase,
		translationUseCase: opts.TranslationUseCase,
		catalogService:     opts.CatalogService,
		health:             opts.Health,
		store:              opts.Store,
		logger:             opts.Logger,
	}

	server.setupRoutes(opts.MetricsHandler)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.MandiUseCase == nil {
		return errors.NewValidationError("mandi use case is required")
	}
	if opts.TranslationUseCase == nil {
		return errors.NewValidationError("translation use case is required")
	}
	if opts.CatalogService == nil {
		return errors.NewValidationError("catalog service is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health reporter is required")
	}
	if opts.Store == nil {
		return errors.NewValidationError("cache store is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return validateOrigins(opts.Config.AllowedOrigins)
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(metricsHandler http.Handler) {
	s.router.GET("/health", s.getHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/translate", s.translate)
		v1.POST("/tts", s.synthesize)

		v1.GET("/weather", s.getWeather)
		v1.GET("/weather/alerts", s.getWeatherAlerts)

		v1.GET("/mandi/prices", s.getMandiPrices)
		v1.GET("/mandi/trends", s.getMandiTrends)

		v1.GET("/profile", s.getProfile)
		v1.GET("/tasks", s.getTasks)
		v1.POST("/tasks/mark", s.markTask)
		v1.GET("/policies", s.getPolicies)
		v1.GET("/leaderboard", s.getLeaderboard)
		v1.POST("/detect-disease", s.detectDisease)
	}

	if metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
