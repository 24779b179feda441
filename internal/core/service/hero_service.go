package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// HeroService is a thin CRUD layer over the hero store.
type HeroService struct {
	heroes ports.HeroStore
	logger zerolog.Logger
}

func NewHeroService(heroes ports.HeroStore, logger zerolog.Logger) *HeroService {
	return &HeroService{heroes: heroes, logger: logger}
}

func (s *HeroService) List(ctx context.Context) ([]ports.HeroProjection, error) {
	heroes, err := s.heroes.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.HeroProjection, 0, len(heroes))
	for i := range heroes {
		projections = append(projections, projectHero(&heroes[i]))
	}
	return projections, nil
}

func (s *HeroService) GetByID(ctx context.Context, id uuid.UUID) (*ports.HeroProjection, error) {
	hero, err := s.heroes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := projectHero(hero)
	return &p, nil
}

// Create makes a new level-1 hero with zero experience.
func (s *HeroService) Create(ctx context.Context, input ports.CreateHeroInput) (*ports.HeroProjection, error) {
	hero := &domain.Hero{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		Class:     input.Class,
		Level:     1,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.heroes.Create(ctx, hero); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create hero")
		return nil, err
	}

	p := projectHero(hero)
	return &p, nil
}

func (s *HeroService) Update(ctx context.Context, input ports.UpdateHeroInput) (*ports.HeroProjection, error) {
	hero, err := s.heroes.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	hero.Name = input.Name
	hero.Class = input.Class
	hero.Level = input.Level
	hero.Experience = input.Experience

	if err := s.heroes.Update(ctx, hero); err != nil {
		return nil, err
	}

	p := projectHero(hero)
	return &p, nil
}

func (s *HeroService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.heroes.GetByID(ctx, id); err != nil {
		return err
	}
	return s.heroes.Delete(ctx, id)
}

func projectHero(hero *domain.Hero) ports.HeroProjection {
	return ports.HeroProjection{
		ID:         hero.ID,
		UserID:     hero.UserID,
		Name:       hero.Name,
		Class:      string(hero.Class),
		Level:      hero.Level,
		Experience: hero.Experience,
		CreatedAt:  hero.CreatedAt,
		OwnerName:  hero.OwnerName,
		ItemCount:  hero.ItemCount,
	}
}
