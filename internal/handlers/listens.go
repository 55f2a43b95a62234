package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vibesync/internal/auth"
	"vibesync/internal/models"
)

// ListenStore records and counts listen events
type ListenStore interface {
	RecordListen(ctx context.Context, event models.ListenEvent) error
	PlayCount(ctx context.Context, userID, songID primitive.ObjectID) (int, error)
}

// ListensHandler serves listen event recording
type ListensHandler struct {
	store ListenStore
}

// NewListensHandler creates a listens handler
func NewListensHandler(store ListenStore) *ListensHandler {
	return &ListensHandler{store: store}
}

// RecordListenRequest is the POST /api/listens payload
type RecordListenRequest struct {
	SongID string `json:"song_id" binding:"required"`
	Kind   string `json:"type"`
}

// RecordListen handles POST /api/listens
func (h *ListensHandler) RecordListen(c *gin.Context) {
	var req RecordListenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "song_id is required"})
		return
	}

	songID, err := primitive.ObjectIDFromHex(req.SongID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid song ID"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = models.ListenKindListen
	}
	if kind != models.ListenKindListen && kind != models.ListenKindSearch {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'listen' or 'search'"})
		return
	}

	event := models.ListenEvent{UserID: userID, SongID: songID, Kind: kind}
	if err := h.store.RecordListen(c.Request.Context(), event); err != nil {
		slog.Error("Failed to record listen", "userID", userID.Hex(), "songID", songID.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record listen"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "listen recorded"})
}

// RepeatCount handles GET /api/listens/:songId/repeats. The repeat
// count is the number of plays after the first.
func (h *ListensHandler) RepeatCount(c *gin.Context) {
	songID, err := primitive.ObjectIDFromHex(c.Param("songId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid song ID"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	count, err := h.store.PlayCount(c.Request.Context(), userID, songID)
	if err != nil {
		slog.Error("Failed to count plays", "userID", userID.Hex(), "songID", songID.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count plays"})
		return
	}

	repeats := count - 1
	if repeats < 0 {
		repeats = 0
	}

	c.JSON(http.StatusOK, gin.H{"song_id": songID.Hex(), "repeat_count": repeats})
}
