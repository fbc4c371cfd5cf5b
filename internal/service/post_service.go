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

// PostService manages publications.
type PostService struct {
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(posts repository.PostRepository, dispatcher events.Dispatcher) *PostService {
	return &PostService{posts: posts, dispatcher: dispatcher}
}

// Create publishes a new post authored by the caller.
func (s *PostService) Create(ctx context.Context, authorID int64, titre, body string) (*domain.Post, error) {
	post := &domain.Post{UserID: authorID, Titre: titre, Body: body}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPostCreated,
			ActorID:   authorID,
			Timestamp: time.Now(),
			Payload:   events.PostCreatedPayload{PostID: post.ID, Titre: post.Titre},
		})
	}
	return post, nil
}

// GetByID returns one post.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Post non trouvé")
		}
		return nil, err
	}
	return post, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// ListByUser returns a user's posts with their comments attached.
func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	return s.posts.ListByUserWithComments(ctx, userID)
}

// Update edits a post. Only the author may edit.
func (s *PostService) Update(ctx context.Context, editorID, id int64, titre, body string) (*domain.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != editorID {
		return nil, apperrors.NewForbidden("Vous ne pouvez pas modifier le post d'un autre utilisateur.")
	}

	if titre != "" {
		post.Titre = titre
	}
	if body != "" {
		post.Body = body
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post owned by the caller.
func (s *PostService) Delete(ctx context.Context, ownerID, id int64) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != ownerID {
		return apperrors.NewForbidden("Vous ne pouvez pas supprimer le post d'un autre utilisateur.")
	}
	return s.posts.Delete(ctx, id)
}

// AdminDelete removes any post regardless of author. Caller must already
// have passed the admin gate.
func (s *PostService) AdminDelete(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Post non trouvé")
		}
		return err
	}
	return nil
}
