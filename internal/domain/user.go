package domain

import "time"

// Role determines what a user is allowed to do. Values match the legacy
// French enum stored in the database.
type Role string

const (
	RoleUser      Role = "Utilisateur"
	RoleModerator Role = "Modérateur"
	RoleAdmin     Role = "Admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus represents the administrative state of an account.
type AccountStatus string

const (
	AccountActive AccountStatus = "Actif"
	AccountBanned AccountStatus = "Banni"
)

// Presence tracks whether a user is currently connected.
type Presence string

const (
	PresenceOnline  Presence = "Connecté"
	PresenceOffline Presence = "Déconnecté"
)

// Subscription marks paying accounts.
type Subscription string

const (
	Subscribed    Subscription = "Abonné"
	NotSubscribed Subscription = "Non abonné"
)

// User is the domain model for accounts. PasswordHash is never serialized
// in API responses.
type User struct {
	ID           int64
	GodID        int64
	Avatar       string
	Pseudo       string
	Email        string
	Role         Role
	Status       AccountStatus
	BannedUntil  *time.Time
	Subscription Subscription
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Suspended reports whether the account is banned at the given instant.
// A banned account with no end date is suspended indefinitely.
func (u *User) Suspended(now time.Time) bool {
	if u.Status != AccountBanned {
		return false
	}
	return u.BannedUntil == nil || now.Before(*u.BannedUntil)
}
