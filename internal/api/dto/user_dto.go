package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// UserResponse is the public view of an account. The password hash never
// appears here.
type UserResponse struct {
	ID          int64                `json:"id"`
	GodID       int64                `json:"god_id"`
	Avatar      string               `json:"avatar"`
	Pseudo      string               `json:"pseudo"`
	Email       string               `json:"email"`
	Role        domain.Role          `json:"role"`
	Actif       domain.AccountStatus `json:"actif"`
	BannedUntil *time.Time           `json:"banned_until,omitempty"`
	Abonnement  domain.Subscription  `json:"abonnement"`
	Etat        domain.Presence      `json:"etat"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// NewUserResponse maps a domain user plus live presence to the API shape.
func NewUserResponse(user *domain.User, presence domain.Presence) UserResponse {
	return UserResponse{
		ID:          user.ID,
		GodID:       user.GodID,
		Avatar:      user.Avatar,
		Pseudo:      user.Pseudo,
		Email:       user.Email,
		Role:        user.Role,
		Actif:       user.Status,
		BannedUntil: user.BannedUntil,
		Abonnement:  user.Subscription,
		Etat:        presence,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UpdateUserRequest carries optional profile changes.
type UpdateUserRequest struct {
	Pseudo *string `json:"pseudo"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// Validate checks only the fields that are present.
func (r UpdateUserRequest) Validate() error {
	fields := []*validation.FieldRules{}
	if r.Pseudo != nil {
		fields = append(fields, validation.Field(&r.Pseudo,
			validation.Length(3, 30).Error("Le nom doit contenir entre 3 et 30 caractères.")))
	}
	if r.Email != nil {
		fields = append(fields, validation.Field(&r.Email,
			validation.Match(emailPattern).Error("L'email doit être au format correct (ex: exemple@domaine.com).")))
	}
	if len(fields) == 0 {
		return nil
	}
	return validation.ValidateStruct(&r, fields...)
}

// ChangeRoleRequest sets a new role for a user.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role"`
}

// BanRequest optionally bounds a suspension in time.
type BanRequest struct {
	BannedUntil *time.Time `json:"banned_until"`
}
