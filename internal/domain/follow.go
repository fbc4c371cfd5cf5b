package domain

import "time"

// Follow records that UserID follows FolloweeID. The pair is the primary key.
type Follow struct {
	UserID     int64
	FolloweeID int64
	CreatedAt  time.Time
}
