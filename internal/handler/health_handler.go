package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikol804/dotapost/internal/metrics"
)

// Version is reported by the health endpoint.
var Version = "dev"

// Pinger is a storage backend that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	backend string
	db      Pinger
}

// NewHealthHandler creates a new HealthHandler for the named storage backend.
func NewHealthHandler(backend string, db Pinger) *HealthHandler {
	return &HealthHandler{backend: backend, db: db}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Time     string            `json:"time"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	now := time.Now().UTC().Format(TimeFormat)
	services := map[string]string{
		h.backend: "healthy",
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		services[h.backend] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Time:     now,
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Time:     now,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	if pool, ok := h.db.(*pgxpool.Pool); ok {
		metrics.LogHealthCheckMetrics(c.Request.Context(), pool)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
