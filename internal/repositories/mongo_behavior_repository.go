package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vibesync/internal/models"
)

// MongoBehaviorRepository reads and records listen, like, and follow
// behavior. It satisfies recommend.BehaviorStore.
type MongoBehaviorRepository struct {
	listens *mongo.Collection
	likes   *mongo.Collection
	follows *mongo.Collection
}

// NewMongoBehaviorRepository creates a MongoDB-backed behavior repository
func NewMongoBehaviorRepository(db *models.Database) *MongoBehaviorRepository {
	return &MongoBehaviorRepository{
		listens: db.DB.Collection("listens"),
		likes:   db.DB.Collection("likes"),
		follows: db.DB.Collection("follows"),
	}
}

// RecordListen appends a listen event. Events are immutable once
// recorded.
func (r *MongoBehaviorRepository) RecordListen(ctx context.Context, event models.ListenEvent) error {
	if event.Kind == "" {
		event.Kind = models.ListenKindListen
	}
	if event.ListenedAt.IsZero() {
		event.ListenedAt = time.Now()
	}

	if _, err := r.listens.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to record listen: %w", err)
	}
	return nil
}

// ListenHistory returns the user's listen events, newest first.
func (r *MongoBehaviorRepository) ListenHistory(ctx context.Context, userID primitive.ObjectID) ([]models.ListenEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "listened_at", Value: -1}})
	filter := bson.M{"user_id": userID, "type": models.ListenKindListen}

	cursor, err := r.listens.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load listen history: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.ListenEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode listen history: %w", err)
	}
	return events, nil
}

// PlayCount returns how many times the user listened to the song
func (r *MongoBehaviorRepository) PlayCount(ctx context.Context, userID, songID primitive.ObjectID) (int, error) {
	count, err := r.listens.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"song_id": songID,
		"type":    models.ListenKindListen,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count plays: %w", err)
	}
	return int(count), nil
}

// LikedArtistIDs returns the ids of artists the user liked
func (r *MongoBehaviorRepository) LikedArtistIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.artistIDs(ctx, r.likes, userID, "liked artists")
}

// FollowedArtistIDs returns the ids of artists the user follows
func (r *MongoBehaviorRepository) FollowedArtistIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.artistIDs(ctx, r.follows, userID, "followed artists")
}

func (r *MongoBehaviorRepository) artistIDs(ctx context.Context, coll *mongo.Collection, userID primitive.ObjectID, what string) ([]primitive.ObjectID, error) {
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", what, err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ArtistID primitive.ObjectID `bson:"artist_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", what, err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		if !doc.ArtistID.IsZero() {
			ids = append(ids, doc.ArtistID)
		}
	}
	return ids, nil
}
