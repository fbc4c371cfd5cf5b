package dto

import (
	"time"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// FollowResponse is the API view of a follow edge.
type FollowResponse struct {
	UserID     int64     `json:"user_id"`
	FolloweeID int64     `json:"abonne_id"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewFollowResponses maps a slice of follow edges.
func NewFollowResponses(follows []domain.Follow) []FollowResponse {
	out := make([]FollowResponse, 0, len(follows))
	for _, f := range follows {
		out = append(out, FollowResponse{
			UserID:     f.UserID,
			FolloweeID: f.FolloweeID,
			CreatedAt:  f.CreatedAt,
		})
	}
	return out
}
