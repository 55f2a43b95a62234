package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vibesync/internal/cache"
)

// HealthHandler serves GET /health
type HealthHandler struct {
	cache cache.Cache
	index Reindexer
}

// NewHealthHandler creates a health handler
func NewHealthHandler(c cache.Cache, index Reindexer) *HealthHandler {
	return &HealthHandler{cache: c, index: index}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	overall := "healthy"
	cacheStatus := "ok"
	if err := h.cache.Health(c.Request.Context()); err != nil {
		cacheStatus = "unavailable"
		overall = "degraded"
		status = http.StatusServiceUnavailable
	}

	indexStatus := "ok"
	if h.index.LastBuilt().IsZero() {
		indexStatus = "empty"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"cache":  cacheStatus,
		"index": gin.H{
			"status":     indexStatus,
			"entries":    h.index.Len(),
			"last_built": h.index.LastBuilt().Format(time.RFC3339),
		},
	})
}
