package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Cache
	CacheStore   CacheStore
	CacheMetrics CacheMetrics

	// Remote collaborators
	WeatherProvider     WeatherProvider
	MandiProvider       MandiProvider
	TranslationProvider TranslationProvider
	SpeechProvider      SpeechProvider

	// Infrastructure
	Logger Logger
	Health []HealthChecker
}
