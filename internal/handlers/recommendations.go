package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vibesync/internal/auth"
	"vibesync/internal/cache"
	"vibesync/internal/models"
	"vibesync/internal/recommend"
)

// Recommender produces a personalized song list
type Recommender interface {
	Recommend(ctx context.Context, userID string, limit int) ([]models.Song, error)
}

// RecommendationsHandler serves GET /api/recommendations
type RecommendationsHandler struct {
	engine   Recommender
	cache    cache.Cache
	cacheTTL time.Duration
	maxLimit int
}

// NewRecommendationsHandler creates a recommendations handler
func NewRecommendationsHandler(engine Recommender, c cache.Cache, ttl time.Duration) *RecommendationsHandler {
	return &RecommendationsHandler{
		engine:   engine,
		cache:    c,
		cacheTTL: ttl,
		maxLimit: 50,
	}
}

// RecommendationsResponse is the recommendations payload
type RecommendationsResponse struct {
	Songs []models.Song `json:"songs"`
	Count int           `json:"count"`
}

// Recommendations handles GET /api/recommendations
func (h *RecommendationsHandler) Recommendations(c *gin.Context) {
	userID := auth.UserID(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	cacheKey := fmt.Sprintf("recommendations:%s:%d", userID, limit)
	if cached := h.fromCache(c.Request.Context(), cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	songs, err := h.engine.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidUserID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
			return
		}
		slog.Error("Recommendation failed", "userID", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		return
	}

	resp := &RecommendationsResponse{Songs: songs, Count: len(songs)}
	h.toCache(c.Request.Context(), cacheKey, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *RecommendationsHandler) fromCache(ctx context.Context, key string) *RecommendationsResponse {
	if h.cache == nil {
		return nil
	}
	data, err := h.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var resp RecommendationsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		slog.Warn("Discarding malformed cached recommendations", "key", key, "error", err)
		return nil
	}
	return &resp
}

func (h *RecommendationsHandler) toCache(ctx context.Context, key string, resp *RecommendationsResponse) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, data, h.cacheTTL); err != nil {
		slog.Warn("Failed to cache recommendations", "key", key, "error", err)
	}
}
