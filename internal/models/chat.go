package models

import "time"

// Chat message senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one entry in a user's conversation history
type ChatMessage struct {
	Sender    string    `bson:"sender" json:"sender"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
