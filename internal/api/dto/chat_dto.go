package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// ChatSessionRequest opens a conversation with another user.
type ChatSessionRequest struct {
	PeerID int64 `json:"sendUser_id"`
}

// Validate enforces the chat session schema.
func (r ChatSessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PeerID,
			validation.Required.Error("Le destinataire est requis.")),
	)
}

// ChatMessageRequest payload for sending or editing chat messages.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// Validate enforces the chat message schema.
func (r ChatMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message,
			validation.Required.Error("Le message est requis.")),
	)
}

// ChatSessionResponse is the API view of a chat session.
type ChatSessionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PeerID    int64     `json:"sendUser_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewChatSessionResponse maps a domain chat session.
func NewChatSessionResponse(session *domain.ChatSession) ChatSessionResponse {
	return ChatSessionResponse{
		ID:        session.ID,
		UserID:    session.UserID,
		PeerID:    session.PeerID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

// ChatMessageResponse is the API view of a chat message.
type ChatMessageResponse struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewChatMessageResponse maps a domain chat message.
func NewChatMessageResponse(message *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        message.ID,
		SessionID: message.SessionID,
		UserID:    message.UserID,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	}
}
