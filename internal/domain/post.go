package domain

import "time"

// Post is a user publication.
type Post struct {
	ID        int64
	UserID    int64
	Titre     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Comments is populated by queries that join comments in.
	Comments []Comment
}
