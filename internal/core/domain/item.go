package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType categorises what an item is used for.
type ItemType string

const (
	TypeWeapon        ItemType = "weapon"
	TypeArmor         ItemType = "armor"
	TypeConsumable    ItemType = "consumable"
	TypeMiscellaneous ItemType = "miscellaneous"
)

// ItemRarity is how hard an item is to come by.
type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// Item is a game item held by a hero.
type Item struct {
	ID            uuid.UUID  `json:"id"`
	HeroID        uuid.UUID  `json:"hero_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Type          ItemType   `json:"type"`
	Rarity        ItemRarity `json:"rarity"`
	RequiredLevel int        `json:"required_level"`
	Quantity      int        `json:"quantity"`
	IsEquipped    bool       `json:"is_equipped"`
	AcquiredAt    time.Time  `json:"acquired_at"`
}
