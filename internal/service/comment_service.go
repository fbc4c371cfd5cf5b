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

// CommentService manages replies on posts.
type CommentService struct {
	comments   repository.CommentRepository
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// NewCommentService builds the service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, posts: posts, dispatcher: dispatcher}
}

// Create attaches a comment to an existing post.
func (s *CommentService) Create(ctx context.Context, authorID, postID int64, body string) (*domain.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("Le post avec cet ID n'existe pas.", nil)
		}
		return nil, err
	}

	comment := &domain.Comment{UserID: authorID, PostID: postID, Body: body}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCommentAdded,
			ActorID:   authorID,
			Timestamp: time.Now(),
			Payload:   events.CommentAddedPayload{CommentID: comment.ID, PostID: postID},
		})
	}
	return comment, nil
}

// ListByPost returns the comments for a post, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// ListByUser returns a user's comments.
func (s *CommentService) ListByUser(ctx context.Context, userID int64) ([]domain.Comment, error) {
	return s.comments.ListByUser(ctx, userID)
}

// Update edits a comment. Only the author may edit.
func (s *CommentService) Update(ctx context.Context, editorID, id int64, body string) (*domain.Comment, error) {
	comment, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != editorID {
		return nil, apperrors.NewForbidden("Vous ne pouvez pas modifier le commentaire d'un autre utilisateur.")
	}

	if body != "" {
		comment.Body = body
	}
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment owned by the caller.
func (s *CommentService) Delete(ctx context.Context, ownerID, id int64) error {
	comment, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != ownerID {
		return apperrors.NewForbidden("Vous ne pouvez pas supprimer le commentaire d'un autre utilisateur.")
	}
	return s.comments.Delete(ctx, id)
}

func (s *CommentService) getByID(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Commentaire non trouvé")
		}
		return nil, err
	}
	return comment, nil
}
