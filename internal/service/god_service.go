package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pantheon-service/internal/domain"
	"github.com/spec-kit/pantheon-service/internal/repository"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// GodInput carries validated god fields.
type GodInput struct {
	Nom         string
	Description string
	Mythologie  string
	ImageURL    string
}

// GodService manages the profile-category catalog.
type GodService struct {
	gods repository.GodRepository
}

// NewGodService builds the service.
func NewGodService(gods repository.GodRepository) *GodService {
	return &GodService{gods: gods}
}

// Create adds a god; names are unique.
func (s *GodService) Create(ctx context.Context, input GodInput) (*domain.God, error) {
	if _, err := s.gods.GetByName(ctx, input.Nom); err == nil {
		return nil, apperrors.NewConflict("Dieu déjà existant", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	god := &domain.God{
		Nom:         input.Nom,
		Description: input.Description,
		Mythologie:  input.Mythologie,
		ImageURL:    input.ImageURL,
	}
	if err := s.gods.Create(ctx, god); err != nil {
		return nil, err
	}
	return god, nil
}

// Update applies non-empty fields to an existing god.
func (s *GodService) Update(ctx context.Context, id int64, input GodInput) (*domain.God, error) {
	god, err := s.gods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Dieu non trouvé")
		}
		return nil, err
	}

	if input.Nom != "" {
		god.Nom = input.Nom
	}
	if input.Description != "" {
		god.Description = input.Description
	}
	if input.Mythologie != "" {
		god.Mythologie = input.Mythologie
	}
	if input.ImageURL != "" {
		god.ImageURL = input.ImageURL
	}

	if err := s.gods.Update(ctx, god); err != nil {
		return nil, err
	}
	return god, nil
}

// Delete removes a god.
func (s *GodService) Delete(ctx context.Context, id int64) error {
	if err := s.gods.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Dieu non trouvé")
		}
		return err
	}
	return nil
}

// List returns the whole catalog.
func (s *GodService) List(ctx context.Context) ([]domain.God, error) {
	return s.gods.List(ctx)
}
