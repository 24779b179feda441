package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// ItemService is a thin CRUD layer over the item store.
type ItemService struct {
	items  ports.ItemStore
	logger zerolog.Logger
}

func NewItemService(items ports.ItemStore, logger zerolog.Logger) *ItemService {
	return &ItemService{items: items, logger: logger}
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.ListAll(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	item := &domain.Item{
		ID:            uuid.New(),
		HeroID:        input.HeroID,
		Name:          input.Name,
		Description:   input.Description,
		Type:          input.Type,
		Rarity:        input.Rarity,
		RequiredLevel: input.RequiredLevel,
		Quantity:      input.Quantity,
		AcquiredAt:    time.Now().UTC(),
	}

	if err := s.items.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create item")
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, input ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Type = input.Type
	item.Rarity = input.Rarity
	item.RequiredLevel = input.RequiredLevel
	item.Quantity = input.Quantity
	item.IsEquipped = input.IsEquipped

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.items.GetByID(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}
