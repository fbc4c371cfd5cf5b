package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserFollowed    EventType = "user_followed"
	EventPostCreated     EventType = "post_created"
	EventCommentAdded    EventType = "comment_added"
	EventChatMessageSent EventType = "chat_message_sent"
)

// Event represents a domain event emitted by services. ActorID is the user
// the action originates from.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Pseudo string `json:"pseudo"`
	GodID  int64  `json:"god_id"`
}

// UserFollowedPayload payload.
type UserFollowedPayload struct {
	FolloweeID int64 `json:"abonne_id"`
}

// PostCreatedPayload payload.
type PostCreatedPayload struct {
	PostID int64  `json:"post_id"`
	Titre  string `json:"titre"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID int64 `json:"comment_id"`
	PostID    int64 `json:"post_id"`
}

// ChatMessageSentPayload payload.
type ChatMessageSentPayload struct {
	SessionID int64 `json:"session_id"`
	MessageID int64 `json:"message_id"`
}
