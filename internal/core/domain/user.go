package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role determines what a user is allowed to do in the system.
type Role string

const (
	RolePlayer    Role = "player"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBanned   UserStatus = "banned"
)

// User models a registered player account. ClanID is nil for users that do
// not belong to a clan. Clan and HeroCount are populated only by
// relationship-aware fetches; HeroCount is 0 when heroes were not loaded.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ClanID       *uuid.UUID `json:"clan_id,omitempty"`

	Clan      *Clan `json:"-"`
	HeroCount int   `json:"-"`
}
