package api

import (
	"net/http"

	"farmerassist.app/internal/adapters/infrastructure"
	"farmerassist.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness, cache occupancy and component status
type HealthResponse struct {
	OK         bool                          `json:"ok"`
	Service    string                        `json:"service"`
	Cache      map[string]int                `json:"cache"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	ctx := c.Request.Context()

	sizes := make(map[string]int)
	for _, ns := range s.store.Namespaces() {
		sizes[ns.String()] = s.store.Size(ctx, ns)
	}

	components := s.health.CheckAll(ctx)
	response := HealthResponse{
		OK:         infrastructure.Healthy(components),
		Service:    s.config.ServiceName,
		Cache:      sizes,
		Components: components,
	}

	statusCode := http.StatusOK
	if !response.OK {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
