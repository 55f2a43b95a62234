package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vibesync/internal/models"
)

// MongoChatRepository persists per-user conversation history as one
// document per user with an embedded message array. It satisfies
// chat.Store.
type MongoChatRepository struct {
	collection *mongo.Collection
}

// NewMongoChatRepository creates a MongoDB-backed chat repository
func NewMongoChatRepository(db *models.Database) *MongoChatRepository {
	return &MongoChatRepository{
		collection: db.DB.Collection("chat_histories"),
	}
}

// AppendMessages pushes messages onto the user's history in order,
// creating the history document on first use.
func (r *MongoChatRepository) AppendMessages(ctx context.Context, userID string, msgs []models.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	update := bson.M{
		"$push": bson.M{"messages": bson.M{"$each": msgs}},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts); err != nil {
		return fmt.Errorf("failed to append chat messages: %w", err)
	}
	return nil
}

// History returns the user's messages in append order. A user with no
// history gets an empty slice, not an error.
func (r *MongoChatRepository) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	var doc struct {
		Messages []models.ChatMessage `bson:"messages"`
	}

	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []models.ChatMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	// Skip malformed entries with no text rather than failing the
	// whole history.
	history := make([]models.ChatMessage, 0, len(doc.Messages))
	for _, msg := range doc.Messages {
		if msg.Text != "" {
			history = append(history, msg)
		}
	}
	return history, nil
}

// Clear deletes the user's entire history
func (r *MongoChatRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
