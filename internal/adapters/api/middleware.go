package api

import (
	"net/http"
	"strings"
	"time"

	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
	corsMaxAge      = 12 * time.Hour
)

// dropOversizedRequestID discards caller supplied IDs that are blank or too long,
// so requestid assigns a fresh one
func dropOversizedRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			c.Request.Header.Del(requestIDHeader)
		}
		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return requestid.New(requestid.WithGenerator(uuid.NewString))
}

// corsMiddleware allows browser clients from the configured origins; "*" allows any origin
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        corsMaxAge,
	}

	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		switch {
		case origin == "*":
			cfg.AllowAllOrigins = true
		case origin != "":
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	if cfg.AllowAllOrigins {
		cfg.AllowOrigins = nil
	}

	return cors.New(cfg)
}

// validateOrigins rejects origin lists the CORS middleware cannot serve
func validateOrigins(allowedOrigins []string) error {
	configured := 0
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		configured++
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return errors.NewValidationError("allowed origin " + origin + " must be * or start with http:// or https://")
		}
	}
	if configured == 0 {
		return errors.NewValidationError("at least one allowed origin is required")
	}
	return nil
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("HTTP request handled",
			ports.F("request_id", requestid.Get(c)),
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

func requestMetrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
