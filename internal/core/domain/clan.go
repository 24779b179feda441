package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clan is a guild of users. The founder is permanent: no operation transfers
// founder-ship, and only the founder may update or delete the clan.
type Clan struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	FounderID   uuid.UUID `json:"founder_id"`
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"created_at"`

	// Founder, Members and MemberCount are populated only by
	// relationship-aware fetches.
	Founder     *User  `json:"-"`
	Members     []User `json:"-"`
	MemberCount int    `json:"-"`
}
