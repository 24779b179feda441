package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// HeroProjection is the list/detail view of a hero.
type HeroProjection struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Class      string    `json:"class"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	OwnerName  string    `json:"owner_name,omitempty"`
	ItemCount  int       `json:"item_count"`
}

// CreateHeroInput carries the data needed to create a hero. Level and
// experience always start at 1 and 0.
type CreateHeroInput struct {
	UserID uuid.UUID
	Name   string
	Class  domain.HeroClass
}

// UpdateHeroInput mutates an existing hero.
type UpdateHeroInput struct {
	ID         uuid.UUID
	Name       string
	Class      domain.HeroClass
	Level      int
	Experience int
}

// HeroService exposes hero CRUD operations.
type HeroService interface {
	List(ctx context.Context) ([]HeroProjection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HeroProjection, error)
	Create(ctx context.Context, input CreateHeroInput) (*HeroProjection, error)
	Update(ctx context.Context, input UpdateHeroInput) (*HeroProjection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateItemInput carries the data needed to create an item.
type CreateItemInput struct {
	HeroID        uuid.UUID
	Name          string
	Description   string
	Type          domain.ItemType
	Rarity        domain.ItemRarity
	RequiredLevel int
	Quantity      int
}

// UpdateItemInput mutates an existing item.
type UpdateItemInput struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Type          domain.ItemType
	Rarity        domain.ItemRarity
	RequiredLevel int
	Quantity      int
	IsEquipped    bool
}

// ItemService exposes item CRUD operations.
type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	Update(ctx context.Context, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
