package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database represents the database connection
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase creates a new database connection
func NewDatabase(ctx context.Context, mongoURL, dbName string) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(20).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Database{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

// Close closes the database connection
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// CreateIndexes creates necessary indexes for optimal performance
func (d *Database) CreateIndexes(ctx context.Context) error {
	songIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: 1}, {Key: "artist", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "artist", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "genre", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "release_year", Value: -1}},
		},
	}
	if _, err := d.DB.Collection("songs").Indexes().CreateMany(ctx, songIndexes); err != nil {
		return err
	}

	listenIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "listened_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "song_id", Value: 1}},
		},
	}
	if _, err := d.DB.Collection("listens").Indexes().CreateMany(ctx, listenIndexes); err != nil {
		return err
	}

	userScoped := bson.D{{Key: "user_id", Value: 1}}
	for _, name := range []string{"likes", "follows"} {
		if _, err := d.DB.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: userScoped}); err != nil {
			return err
		}
	}

	_, err := d.DB.Collection("chat_histories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    userScoped,
		Options: options.Index().SetUnique(true),
	})
	return err
}
