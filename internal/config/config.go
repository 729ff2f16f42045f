package config

import (
	"fmt"
	"strings"
	"time"

	"farmerassist.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB       = 15
	maxPortNumber    = 65535
	maxRemoteTimeout = 2 * time.Minute
	maxMandiLimit    = 1000
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	Translation TranslationConfig `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	Mandi       MandiConfig       `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port               int      `envconfig:"SERVER_PORT" default:"4000"`
	ServiceName        string   `envconfig:"SERVICE_NAME" default:"farmer-assistant-backend"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type           CacheType     `envconfig:"CACHE_TYPE" default:"memory"`
	TranslationTTL time.Duration `envconfig:"CACHE_TRANSLATION_TTL" default:"24h"`
	WeatherTTL     time.Duration `envconfig:"CACHE_WEATHER_TTL" default:"30m"`
	MandiTTL       time.Duration `envconfig:"CACHE_MANDI_TTL" default:"1h"`
	SweepInterval  time.Duration `envconfig:"CACHE_SWEEP_INTERVAL" default:"1h"`
	CoalesceFetch  bool          `envconfig:"CACHE_COALESCE_FETCHES" default:"true"`
	Redis          RedisConfig   `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"farmerassist"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type TranslationConfig struct {
	APIURL        string        `envconfig:"TRANSLATION_API_URL" default:"https://translation.example.gov.in/v1"`
	APIKey        string        `envconfig:"TRANSLATION_API_KEY"`
	Timeout       time.Duration `envconfig:"TRANSLATION_TIMEOUT" default:"10s"`
	DefaultSource string        `envconfig:"TRANSLATION_DEFAULT_SOURCE" default:"en"`
	DefaultTarget string        `envconfig:"TRANSLATION_DEFAULT_TARGET" default:"hi"`
	TTSAPIURL     string        `envconfig:"TTS_API_URL" default:"https://tts.example.gov.in/v1"`
	TTSTimeout    time.Duration `envconfig:"TTS_TIMEOUT" default:"15s"`
	DefaultVoice  string        `envconfig:"TTS_DEFAULT_VOICE" default:"female"`
}

type WeatherConfig struct {
	APIURL  string        `envconfig:"WEATHER_API_URL" default:"https://api.openweathermap.org/data/2.5"`
	APIKey  string        `envconfig:"WEATHER_API_KEY"`
	Timeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
}

type MandiConfig struct {
	APIURL          string        `envconfig:"MANDI_API_URL" default:"https://api.data.gov.in"`
	APIKey          string        `envconfig:"MANDI_API_KEY"`
	ResourceID      string        `envconfig:"MANDI_RESOURCE_ID" default:"9ef84268-d588-465a-a308-a864a43d0070"`
	Timeout         time.Duration `envconfig:"MANDI_TIMEOUT" default:"10s"`
	DefaultState    string        `envconfig:"MANDI_DEFAULT_STATE" default:"Punjab"`
	DefaultDistrict string        `envconfig:"MANDI_DEFAULT_DISTRICT" default:"Ludhiana"`
	DefaultCrop     string        `envconfig:"MANDI_DEFAULT_CROP" default:"Wheat"`
	DefaultLimit    int           `envconfig:"MANDI_DEFAULT_LIMIT" default:"10"`
	MaxLimit        int           `envconfig:"MANDI_MAX_LIMIT" default:"100"`
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`

	// ProviderCalls logs every weather and mandi provider call at info level
	ProviderCalls bool `envconfig:"LOG_PROVIDER_CALLS" default:"false"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Translation.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Mandi.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if strings.TrimSpace(s.ServiceName) == "" {
		return errors.NewConfigurationError("SERVICE_NAME cannot be empty", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.TranslationTTL <= 0 {
		return errors.NewConfigurationError("CACHE_TRANSLATION_TTL must be positive", nil)
	}
	if c.WeatherTTL <= 0 {
		return errors.NewConfigurationError("CACHE_WEATHER_TTL must be positive", nil)
	}
	if c.MandiTTL <= 0 {
		return errors.NewConfigurationError("CACHE_MANDI_TTL must be positive", nil)
	}
	if c.SweepInterval <= 0 {
		return errors.NewConfigurationError("CACHE_SWEEP_INTERVAL must be positive", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if strings.TrimSpace(r.KeyPrefix) == "" {
		return errors.NewConfigurationError("REDIS_KEY_PREFIX cannot be empty", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (t *TranslationConfig) Validate() error {
	if err := validateBaseURL("TRANSLATION_API_URL", t.APIURL); err != nil {
		return err
	}
	if err := validateBaseURL("TTS_API_URL", t.TTSAPIURL); err != nil {
		return err
	}
	if err := validateTimeout("TRANSLATION_TIMEOUT", t.Timeout); err != nil {
		return err
	}
	if err := validateTimeout("TTS_TIMEOUT", t.TTSTimeout); err != nil {
		return err
	}
	if strings.TrimSpace(t.DefaultSource) == "" || strings.TrimSpace(t.DefaultTarget) == "" {
		return errors.NewConfigurationError("TRANSLATION_DEFAULT_SOURCE and TRANSLATION_DEFAULT_TARGET cannot be empty", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if err := validateBaseURL("WEATHER_API_URL", w.APIURL); err != nil {
		return err
	}
	return validateTimeout("WEATHER_TIMEOUT", w.Timeout)
}

func (m *MandiConfig) Validate() error {
	if err := validateBaseURL("MANDI_API_URL", m.APIURL); err != nil {
		return err
	}
	if err := validateTimeout("MANDI_TIMEOUT", m.Timeout); err != nil {
		return err
	}
	if strings.TrimSpace(m.ResourceID) == "" {
		return errors.NewConfigurationError("MANDI_RESOURCE_ID cannot be empty", nil)
	}
	if m.MaxLimit < 1 || m.MaxLimit > maxMandiLimit {
		return errors.NewConfigurationError(fmt.Sprintf("MANDI_MAX_LIMIT must be between 1 and %d", maxMandiLimit), nil)
	}
	if m.DefaultLimit < 1 || m.DefaultLimit > m.MaxLimit {
		return errors.NewConfigurationError("MANDI_DEFAULT_LIMIT must be between 1 and MANDI_MAX_LIMIT", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func validateTimeout(name string, value time.Duration) error {
	if value <= 0 || value > maxRemoteTimeout {
		return errors.NewConfigurationError(fmt.Sprintf("%s must be positive and at most %s", name, maxRemoteTimeout), nil)
	}
	return nil
}
