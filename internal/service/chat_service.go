package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/events"
	"github.com/spec-kit/pantheon-service/internal/repository"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// ChatService manages 1:1 chat sessions and their messages. Every operation
// checks that the caller belongs to the session it touches.
type ChatService struct {
	chats      repository.ChatRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewChatService builds the service.
func NewChatService(chats repository.ChatRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ChatService {
	return &ChatService{chats: chats, users: users, dispatcher: dispatcher}
}

// CreateSession opens a conversation between the caller and a peer.
func (s *ChatService) CreateSession(ctx context.Context, userID, peerID int64) (*domain.ChatSession, error) {
	if userID == peerID {
		return nil, apperrors.NewValidationError("Vous ne pouvez pas créer une session de chat avec vous-même.", nil)
	}
	if _, err := s.users.GetByID(ctx, peerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Destinataire introuvable.")
		}
		return nil, err
	}

	session := &domain.ChatSession{UserID: userID, PeerID: peerID}
	if err := s.chats.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns every session the user participates in.
func (s *ChatService) ListSessions(ctx context.Context, userID int64) ([]domain.ChatSession, error) {
	return s.chats.ListSessionsByUser(ctx, userID)
}

// DeleteSession removes a session the caller belongs to.
func (s *ChatService) DeleteSession(ctx context.Context, userID, sessionID int64) error {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.Involves(userID) {
		return apperrors.NewForbidden("Vous ne participez pas à cette session de chat.")
	}
	return s.chats.DeleteSession(ctx, sessionID)
}

// SendMessage posts a message into a session the caller belongs to.
func (s *ChatService) SendMessage(ctx context.Context, userID, sessionID int64, text string) (*domain.ChatMessage, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Involves(userID) {
		return nil, apperrors.NewForbidden("Vous ne participez pas à cette session de chat.")
	}

	message := &domain.ChatMessage{SessionID: sessionID, UserID: userID, Message: text}
	if err := s.chats.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventChatMessageSent,
			ActorID:   userID,
			Timestamp: time.Now(),
			Payload:   events.ChatMessageSentPayload{SessionID: sessionID, MessageID: message.ID},
		})
	}
	return message, nil
}

// ListMessages returns the messages of a session the caller belongs to.
func (s *ChatService) ListMessages(ctx context.Context, userID, sessionID int64) ([]domain.ChatMessage, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Involves(userID) {
		return nil, apperrors.NewForbidden("Vous ne participez pas à cette session de chat.")
	}
	return s.chats.ListMessagesBySession(ctx, sessionID)
}

// ModifyMessage edits a message. Only its author may edit, and the message
// must belong to the referenced session.
func (s *ChatService) ModifyMessage(ctx context.Context, userID, sessionID, messageID int64, text string) (*domain.ChatMessage, error) {
	message, err := s.getOwnMessage(ctx, userID, sessionID, messageID)
	if err != nil {
		return nil, err
	}
	message.Message = text
	if err := s.chats.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// DeleteMessage removes a message authored by the caller.
func (s *ChatService) DeleteMessage(ctx context.Context, userID, sessionID, messageID int64) error {
	message, err := s.getOwnMessage(ctx, userID, sessionID, messageID)
	if err != nil {
		return err
	}
	return s.chats.DeleteMessage(ctx, message.ID)
}

func (s *ChatService) getSession(ctx context.Context, sessionID int64) (*domain.ChatSession, error) {
	session, err := s.chats.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Session de chat introuvable.")
		}
		return nil, err
	}
	return session, nil
}

func (s *ChatService) getOwnMessage(ctx context.Context, userID, sessionID, messageID int64) (*domain.ChatMessage, error) {
	message, err := s.chats.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Message introuvable.")
		}
		return nil, err
	}
	if message.SessionID != sessionID {
		return nil, apperrors.NewValidationError("Le message n'appartient pas à cette session.", nil)
	}
	if message.UserID != userID {
		return nil, apperrors.NewForbidden("Vous ne pouvez pas modifier le message d'un autre utilisateur.")
	}
	return message, nil
}
