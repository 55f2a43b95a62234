package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vibesync/internal/catalog"
	"vibesync/internal/resolve"
)

// Matcher resolves free text against the catalog
type Matcher interface {
	Resolve(text string) resolve.Resolution
	ResolveArtist(name string) (*catalog.SearchEntry, bool)
}

// Reindexer rebuilds the in-memory catalog index
type Reindexer interface {
	Rebuild(ctx context.Context) error
	Len() int
	LastBuilt() time.Time
}

// ResolveHandler serves entity resolution and index administration
type ResolveHandler struct {
	matcher Matcher
	index   Reindexer
}

// NewResolveHandler creates a resolve handler
func NewResolveHandler(matcher Matcher, index Reindexer) *ResolveHandler {
	return &ResolveHandler{matcher: matcher, index: index}
}

// Resolve handles GET /api/resolve?q=
func (h *ResolveHandler) Resolve(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	result := h.matcher.Resolve(query)
	c.JSON(http.StatusOK, result)
}

// ResolveArtist handles GET /api/resolve/artist?name=
func (h *ResolveHandler) ResolveArtist(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'name' is required"})
		return
	}

	entry, ok := h.matcher.ResolveArtist(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching artist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   entry.ID,
		"name": entry.DisplayName,
		"url":  entry.URL,
	})
}

// Reindex handles POST /api/admin/reindex
func (h *ResolveHandler) Reindex(c *gin.Context) {
	if err := h.index.Rebuild(c.Request.Context()); err != nil {
		slog.Error("Manual reindex failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reindex failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "index rebuilt",
		"entries":    h.index.Len(),
		"last_built": h.index.LastBuilt(),
	})
}
