package domain

import "time"

// God is a profile category every user account is attached to.
type God struct {
	ID          int64
	Nom         string
	Description string
	Mythologie  string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
