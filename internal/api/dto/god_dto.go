package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// GodRequest payload for catalog management.
type GodRequest struct {
	Nom         string `json:"nom"`
	Description string `json:"description"`
	Mythologie  string `json:"mythologie"`
	ImageURL    string `json:"image_url"`
}

// Validate enforces the god schema.
func (r GodRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nom,
			validation.Required.Error("Le nom est requis."),
			validation.Length(1, 100).Error("Le nom ne peut pas dépasser 100 caractères.")),
		validation.Field(&r.Mythologie,
			validation.Required.Error("La mythologie est requise.")),
	)
}

// GodResponse is the API view of a god.
type GodResponse struct {
	ID          int64     `json:"id"`
	Nom         string    `json:"nom"`
	Description string    `json:"description"`
	Mythologie  string    `json:"mythologie"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewGodResponse maps a domain god.
func NewGodResponse(god *domain.God) GodResponse {
	return GodResponse{
		ID:          god.ID,
		Nom:         god.Nom,
		Description: god.Description,
		Mythologie:  god.Mythologie,
		ImageURL:    god.ImageURL,
		CreatedAt:   god.CreatedAt,
		UpdatedAt:   god.UpdatedAt,
	}
}

// NewGodResponses maps a slice of gods.
func NewGodResponses(gods []domain.God) []GodResponse {
	out := make([]GodResponse, 0, len(gods))
	for i := range gods {
		out = append(out, NewGodResponse(&gods[i]))
	}
	return out
}
