package infrastructure

import (
	"context"

	"farmerassist.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is satisfied by cache backends that hold a remote connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports the raw entry count per namespace and, for
// remote backends, whether the backend answers a ping
type CacheHealthChecker struct {
	store     ports.CacheStore
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(store ports.CacheStore, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{store: store, cacheType: cacheType}
}

// Check reports cache backend status and sizes
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.store == nil {
		status.Status = statusUnhealthy
		status.Error = "cache store is not available"
		return status
	}

	if pinger, ok := c.store.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	sizes := make(map[string]int)
	for _, ns := range c.store.Namespaces() {
		sizes[ns.String()] = c.store.Size(ctx, ns)
	}
	status.Details["sizes"] = sizes

	return status
}

// RemoteIntegrationHealthChecker reports whether a remote collaborator is configured.
// It never calls the remote itself; failures there are absorbed by fallbacks.
type RemoteIntegrationHealthChecker struct {
	name        string
	baseURL     string
	hasAPIKey   bool
	hasFallback bool
}

// NewRemoteIntegrationHealthChecker creates a checker for one integration
func NewRemoteIntegrationHealthChecker(name, baseURL, apiKey string, hasFallback bool) *RemoteIntegrationHealthChecker {
	return &RemoteIntegrationHealthChecker{
		name:        name,
		baseURL:     baseURL,
		hasAPIKey:   apiKey != "",
		hasFallback: hasFallback,
	}
}

// Check reports the integration configuration
func (r *RemoteIntegrationHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: r.name,
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"baseURL":    r.baseURL,
			"configured": r.hasAPIKey,
			"fallback":   r.hasFallback,
		},
	}

	// Without a key every call fails; only integrations without a fallback degrade.
	if !r.hasAPIKey && !r.hasFallback {
		status.Status = "degraded"
		status.Error = "API key is not configured"
	}

	return status
}
