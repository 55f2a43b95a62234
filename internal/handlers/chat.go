// Package handlers contains the gin route handlers for the chat,
// recommendation, and catalog surfaces.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibesync/internal/auth"
	"vibesync/internal/chat"
	"vibesync/internal/models"
)

// Conversation is the chat surface the handler delegates to.
type Conversation interface {
	Handle(ctx context.Context, userID, message string) (*chat.Result, error)
	History(ctx context.Context, userID string) ([]models.ChatMessage, error)
	ClearHistory(ctx context.Context, userID string) error
}

// ChatHandler serves the chat endpoints
type ChatHandler struct {
	conversation Conversation
}

// NewChatHandler creates a chat handler
func NewChatHandler(conversation Conversation) *ChatHandler {
	return &ChatHandler{conversation: conversation}
}

// ChatRequest is the POST /api/chat payload
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse echoes the reply plus the full updated history
type ChatResponse struct {
	Response string               `json:"response"`
	History  []models.ChatMessage `json:"history"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := auth.UserID(c)
	result, err := h.conversation.Handle(c.Request.Context(), userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		case errors.Is(err, chat.ErrHistoryUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to save message"})
		default:
			slog.Error("Chat handling failed", "userID", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: result.Reply, History: result.History})
}

// History handles GET /api/chat/history
func (h *ChatHandler) History(c *gin.Context) {
	userID := auth.UserID(c)
	history, err := h.conversation.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "history": history})
}

// ClearHistory handles DELETE /api/chat/history
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID := auth.UserID(c)
	if err := h.conversation.ClearHistory(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chat history cleared"})
}
