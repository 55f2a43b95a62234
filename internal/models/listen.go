package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listen event kinds. A "listen" is a play of at least 30 seconds; a
// "search" records that the user looked the song up.
const (
	ListenKindListen = "listen"
	ListenKindSearch = "search"
)

// ListenEvent is an immutable, append-only record of a user playing or
// searching for a song.
type ListenEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	SongID     primitive.ObjectID `bson:"song_id" json:"song_id"`
	Kind       string             `bson:"type" json:"type"`
	ListenedAt time.Time          `bson:"listened_at" json:"listened_at"`
}
