package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes liveness and readiness probes. The service holds no
// own state; readiness only reflects that a provider endpoint is configured.
type HealthHandler struct {
	serviceName     string
	providerBaseURL string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName, providerBaseURL string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, providerBaseURL: providerBaseURL}
}

// RegisterRoutes registers the health endpoints on the given router.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health/live", h.Live)
	r.GET("/health/ready", h.Ready)
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.serviceName})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.providerBaseURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "mapping provider base URL not configured",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.serviceName})
}
