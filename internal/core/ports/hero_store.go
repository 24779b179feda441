package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// HeroStore defines persistence operations for heroes.
type HeroStore interface {
	// ListAll returns every hero with owner username and item count populated.
	ListAll(ctx context.Context) ([]domain.Hero, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Hero, error)
	Create(ctx context.Context, hero *domain.Hero) error
	Update(ctx context.Context, hero *domain.Hero) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemStore defines persistence operations for items.
type ItemStore interface {
	ListAll(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}
