package domain

import "time"

// ChatSession is a 1:1 conversation between two users.
type ChatSession struct {
	ID        int64
	UserID    int64
	PeerID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Involves reports whether the user is one of the two participants.
func (s *ChatSession) Involves(userID int64) bool {
	return s.UserID == userID || s.PeerID == userID
}

// ChatMessage is one message inside a chat session.
type ChatMessage struct {
	ID        int64
	SessionID int64
	UserID    int64
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
