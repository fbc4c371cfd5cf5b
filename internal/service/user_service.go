package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/repository"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// UserUpdateInput carries optional self-service profile changes.
type UserUpdateInput struct {
	Pseudo *string
	Email  *string
	Avatar *string
}

// UserService covers account reads and administration.
type UserService struct {
	users    repository.UserRepository
	presence *PresenceService
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, presence *PresenceService) *UserService {
	return &UserService{users: users, presence: presence}
}

// GetByID returns one account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Utilisateur non trouvé")
		}
		return nil, err
	}
	return user, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Search filters accounts by pseudo, email and creation date.
func (s *UserService) Search(ctx context.Context, filter repository.UserSearchFilter) ([]domain.User, error) {
	return s.users.Search(ctx, filter)
}

// PresenceOf reports the live connection status for a user.
func (s *UserService) PresenceOf(ctx context.Context, id int64) domain.Presence {
	return s.presence.Status(ctx, id)
}

// UpdateProfile applies the provided fields to the caller's own account.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, input UserUpdateInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Pseudo != nil {
		user.Pseudo = *input.Pseudo
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Utilisateur non trouvé")
		}
		return err
	}
	return nil
}

// ChangeRole sets a new role for the account. The change takes effect for
// the target at their next login — outstanding tokens keep the old role.
func (s *UserService) ChangeRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("Rôle invalide", nil)
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Utilisateur non trouvé")
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ToggleStatus flips the account between Actif and Banni. Banning accepts an
// optional end timestamp; unbanning clears it.
func (s *UserService) ToggleStatus(ctx context.Context, id int64, bannedUntil *time.Time) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Status == domain.AccountActive {
		user.Status = domain.AccountBanned
		user.BannedUntil = bannedUntil
	} else {
		user.Status = domain.AccountActive
		user.BannedUntil = nil
	}

	if err := s.users.UpdateStatus(ctx, id, user.Status, user.BannedUntil); err != nil {
		return nil, err
	}
	return user, nil
}
