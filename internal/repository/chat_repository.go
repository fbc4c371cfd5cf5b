package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// ChatRepository encapsulates chat sessions and their messages.
type ChatRepository interface {
	CreateSession(ctx context.Context, session *domain.ChatSession) error
	DeleteSession(ctx context.Context, id int64) error
	GetSession(ctx context.Context, id int64) (*domain.ChatSession, error)
	ListSessionsByUser(ctx context.Context, userID int64) ([]domain.ChatSession, error)

	CreateMessage(ctx context.Context, message *domain.ChatMessage) error
	UpdateMessage(ctx context.Context, message *domain.ChatMessage) error
	DeleteMessage(ctx context.Context, id int64) error
	GetMessage(ctx context.Context, id int64) (*domain.ChatMessage, error)
	ListMessagesBySession(ctx context.Context, sessionID int64) ([]domain.ChatMessage, error)
}

type chatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository instantiates repository.
func NewChatRepository(pool *pgxpool.Pool) ChatRepository {
	return &chatRepository{pool: pool}
}

func (r *chatRepository) CreateSession(ctx context.Context, session *domain.ChatSession) error {
	const query = `
        INSERT INTO chat_sessions (user_id, peer_id)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, session.UserID, session.PeerID).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
}

func (r *chatRepository) DeleteSession(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM chat_sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *chatRepository) GetSession(ctx context.Context, id int64) (*domain.ChatSession, error) {
	const query = `
        SELECT id, user_id, peer_id, created_at, updated_at
        FROM chat_sessions WHERE id=$1`
	var session domain.ChatSession
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.PeerID,
		&session.CreatedAt,
		&session.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *chatRepository) ListSessionsByUser(ctx context.Context, userID int64) ([]domain.ChatSession, error) {
	const query = `
        SELECT id, user_id, peer_id, created_at, updated_at
        FROM chat_sessions WHERE user_id=$1 OR peer_id=$1
        ORDER BY updated_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []domain.ChatSession{}
	for rows.Next() {
		var session domain.ChatSession
		if err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.PeerID,
			&session.CreatedAt,
			&session.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	const query = `
        INSERT INTO chat_messages (session_id, user_id, message)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, message.SessionID, message.UserID, message.Message).
		Scan(&message.ID, &message.CreatedAt, &message.UpdatedAt)
}

func (r *chatRepository) UpdateMessage(ctx context.Context, message *domain.ChatMessage) error {
	const query = `UPDATE chat_messages SET message=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, message.Message, message.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *chatRepository) DeleteMessage(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM chat_messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *chatRepository) GetMessage(ctx context.Context, id int64) (*domain.ChatMessage, error) {
	const query = `
        SELECT id, session_id, user_id, message, created_at, updated_at
        FROM chat_messages WHERE id=$1`
	var message domain.ChatMessage
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.SessionID,
		&message.UserID,
		&message.Message,
		&message.CreatedAt,
		&message.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *chatRepository) ListMessagesBySession(ctx context.Context, sessionID int64) ([]domain.ChatMessage, error) {
	const query = `
        SELECT id, session_id, user_id, message, created_at, updated_at
        FROM chat_messages WHERE session_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		var message domain.ChatMessage
		if err := rows.Scan(
			&message.ID,
			&message.SessionID,
			&message.UserID,
			&message.Message,
			&message.CreatedAt,
			&message.UpdatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
