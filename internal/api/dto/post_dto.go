package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// PostRequest payload for creating or editing posts.
type PostRequest struct {
	Titre string `json:"titre"`
	Post  string `json:"post"`
}

// Validate enforces the post schema.
func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titre,
			validation.Required.Error("Le titre est requis."),
			validation.Length(1, 200).Error("Le titre ne peut pas dépasser 200 caractères.")),
		validation.Field(&r.Post,
			validation.Required.Error("Le contenu du post est requis.")),
	)
}

// PostResponse is the API view of a post.
type PostResponse struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Titre     string            `json:"titre"`
	Post      string            `json:"post"`
	Comments  []CommentResponse `json:"commentaires,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewPostResponse maps a domain post, including any attached comments.
func NewPostResponse(post *domain.Post) PostResponse {
	resp := PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Titre:     post.Titre,
		Post:      post.Body,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	for i := range post.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(&post.Comments[i]))
	}
	return resp
}

// NewPostResponses maps a slice of posts.
func NewPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i]))
	}
	return out
}
