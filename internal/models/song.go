package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song represents a catalog song with playback metadata
type Song struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Artist   string             `bson:"artist" json:"artist"`
	ArtistID primitive.ObjectID `bson:"artist_id,omitempty" json:"artist_id,omitempty"`
	Album    string             `bson:"album,omitempty" json:"album,omitempty"`

	ReleaseYear int      `bson:"release_year" json:"release_year"`
	Duration    int      `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	Genre       []string `bson:"genre,omitempty" json:"genre,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`
	CoverArt    string   `bson:"cover_art,omitempty" json:"cover_art,omitempty"`
	AudioURL    string   `bson:"audio_url,omitempty" json:"audio_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
