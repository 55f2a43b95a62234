// Package chat routes user messages through entity resolution and the
// external text generator, and keeps the per-user conversation
// history.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vibesync/internal/catalog"
	"vibesync/internal/models"
	"vibesync/internal/resolve"
)

var (
	// ErrEmptyMessage rejects blank input before anything is persisted.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrHistoryUnavailable is returned when the conversation store
	// cannot persist or return messages. The user-visible contract is
	// "message was saved", so this one does surface.
	ErrHistoryUnavailable = errors.New("chat history unavailable")
)

// Generator is the external text-generation collaborator. The
// implementation owns its request timeout.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store persists conversation history.
type Store interface {
	AppendMessages(ctx context.Context, userID string, msgs []models.ChatMessage) error
	History(ctx context.Context, userID string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, userID string) error
}

// Result is the orchestrator's reply plus the full updated history.
type Result struct {
	Reply   string               `json:"response"`
	History []models.ChatMessage `json:"history"`
}

// Orchestrator handles one chat message end to end.
type Orchestrator struct {
	resolver  *resolve.Resolver
	generator Generator
	store     Store
	now       func() time.Time
}

// NewOrchestrator wires the orchestrator's collaborators.
func NewOrchestrator(resolver *resolve.Resolver, generator Generator, store Store) *Orchestrator {
	return &Orchestrator{
		resolver:  resolver,
		generator: generator,
		store:     store,
		now:       time.Now,
	}
}

// Handle replies to message and appends both the message and the
// reply to the user's history. Generator failures degrade to a fixed
// apologetic reply; only blank input and history-store failures
// surface as errors.
func (o *Orchestrator) Handle(ctx context.Context, userID, message string) (*Result, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	lang := detectLanguage(trimmed)
	reply := o.composeReply(ctx, trimmed, lang)

	now := o.now()
	msgs := []models.ChatMessage{
		{Sender: models.SenderUser, Text: trimmed, Timestamp: now},
		{Sender: models.SenderBot, Text: reply, Timestamp: now},
	}
	if err := o.store.AppendMessages(ctx, userID, msgs); err != nil {
		slog.Error("Failed to persist chat messages", "userID", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}

	history, err := o.store.History(ctx, userID)
	if err != nil {
		slog.Error("Failed to load chat history", "userID", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}

	return &Result{Reply: reply, History: history}, nil
}

// History returns the user's conversation so far.
func (o *Orchestrator) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	history, err := o.store.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}
	return history, nil
}

// ClearHistory deletes the user's conversation.
func (o *Orchestrator) ClearHistory(ctx context.Context, userID string) error {
	if err := o.store.Clear(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}
	return nil
}

func (o *Orchestrator) composeReply(ctx context.Context, message, lang string) string {
	if answer, ok := cannedAnswer(message, lang); ok {
		return answer
	}

	res := o.resolver.Resolve(message)
	if res.Kind != catalog.KindUnknown {
		prompt := buildEnrichmentPrompt(res, lang)
		text, err := o.generator.Generate(ctx, prompt)
		if err != nil {
			slog.Warn("Generator failed on enriched prompt", "error", err)
			text = apology(lang)
		}
		return text + "\n\n" + deepLinkLine(res.Entry, lang)
	}

	// No confident entity. Very short non-music input gets guidance
	// instead of a generator round trip.
	if o.resolver.Vague(message) {
		return guidance(lang)
	}

	prompt := message
	if isBareWord(message) {
		if lang == "en" {
			prompt = "song " + message
		} else {
			prompt = "bài hát " + message
		}
	}

	text, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("Generator failed on raw prompt", "error", err)
		return apology(lang)
	}

	// The generator may name a catalog entity the prompt alone did
	// not; scan its reply before giving up.
	if res := o.resolver.Resolve(text); res.Kind != catalog.KindUnknown {
		return text + "\n\n" + deepLinkLine(res.Entry, lang)
	}
	return text + "\n\n" + musicOnlySuffix(lang)
}

// isBareWord reports whether the message is a single word with no
// sentence punctuation, i.e. likely a bare title fragment.
func isBareWord(message string) bool {
	return len(strings.Fields(message)) == 1 && !strings.ContainsAny(message, "?!")
}
