package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artist represents a catalog artist
type Artist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Aliases   []string           `bson:"aliases,omitempty" json:"aliases,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Followers int                `bson:"followers" json:"followers"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Album represents a catalog album
type Album struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	ArtistID    primitive.ObjectID `bson:"artist_id,omitempty" json:"artist_id,omitempty"`
	ReleaseYear int                `bson:"release_year" json:"release_year"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
