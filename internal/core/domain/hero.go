package domain

import (
	"time"

	"github.com/google/uuid"
)

// HeroClass is the combat archetype of a hero.
type HeroClass string

const (
	ClassWarrior HeroClass = "warrior"
	ClassMage    HeroClass = "mage"
	ClassRogue   HeroClass = "rogue"
)

// Hero is a player character owned by a user.
type Hero struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Class      HeroClass `json:"class"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`

	// OwnerName and ItemCount are populated only by list fetches.
	OwnerName string `json:"-"`
	ItemCount int    `json:"-"`
}
