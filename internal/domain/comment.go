package domain

import "time"

// Comment is a reply attached to a post.
type Comment struct {
	ID        int64
	UserID    int64
	PostID    int64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
