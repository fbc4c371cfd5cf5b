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

// FollowService manages follow relations. The target id always travels in
// the route path, and follow/unfollow apply the same checks in the same
// order: self-reference, target existence, then relation state.
type FollowService struct {
	follows    repository.FollowRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewFollowService builds the service.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, dispatcher events.Dispatcher) *FollowService {
	return &FollowService{follows: follows, users: users, dispatcher: dispatcher}
}

// Follow subscribes the caller to another user.
func (s *FollowService) Follow(ctx context.Context, userID, followeeID int64) (*domain.Follow, error) {
	if userID == followeeID {
		return nil, apperrors.NewValidationError("Vous ne pouvez pas vous abonner à vous-même.", nil)
	}
	if err := s.ensureUserExists(ctx, followeeID); err != nil {
		return nil, err
	}
	if _, err := s.follows.Get(ctx, userID, followeeID); err == nil {
		return nil, apperrors.NewValidationError("Déjà abonné", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	follow := &domain.Follow{UserID: userID, FolloweeID: followeeID}
	if err := s.follows.Create(ctx, follow); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserFollowed,
			ActorID:   userID,
			Timestamp: time.Now(),
			Payload:   events.UserFollowedPayload{FolloweeID: followeeID},
		})
	}
	return follow, nil
}

// Unfollow removes a subscription, mirroring the checks of Follow.
func (s *FollowService) Unfollow(ctx context.Context, userID, followeeID int64) error {
	if userID == followeeID {
		return apperrors.NewValidationError("Vous ne pouvez pas vous désabonner de vous-même.", nil)
	}
	if err := s.ensureUserExists(ctx, followeeID); err != nil {
		return err
	}
	if err := s.follows.Delete(ctx, userID, followeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Pas d'abonnement trouvé.")
		}
		return err
	}
	return nil
}

// IsFollowing reports whether the caller follows the target.
func (s *FollowService) IsFollowing(ctx context.Context, userID, followeeID int64) (bool, error) {
	if _, err := s.follows.Get(ctx, userID, followeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Following lists the users the given user follows.
func (s *FollowService) Following(ctx context.Context, userID int64) ([]domain.Follow, error) {
	return s.follows.ListFollowing(ctx, userID)
}

// Followers lists the users following the given user.
func (s *FollowService) Followers(ctx context.Context, userID int64) ([]domain.Follow, error) {
	return s.follows.ListFollowers(ctx, userID)
}

func (s *FollowService) ensureUserExists(ctx context.Context, id int64) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("L'utilisateur spécifié n'existe pas.", nil)
		}
		return err
	}
	return nil
}
