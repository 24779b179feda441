package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// HeroStore implements ports.HeroStore on PostgreSQL.
type HeroStore struct {
	db DB
}

func NewHeroStore(db DB) *HeroStore {
	return &HeroStore{db: db}
}

// ListAll returns every hero with owner username and item count populated.
func (s *HeroStore) ListAll(ctx context.Context) ([]domain.Hero, error) {
	rows, err := conn(ctx, s.db).Query(ctx, `
		SELECT h.id, h.user_id, h.name, h.class, h.level, h.experience, h.created_at,
			u.username,
			(SELECT COUNT(*) FROM items i WHERE i.hero_id = h.id) AS item_count
		FROM heroes h
		JOIN users u ON u.id = h.user_id
		ORDER BY h.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	defer rows.Close()

	heroes := make([]domain.Hero, 0)
	for rows.Next() {
		var (
			h     domain.Hero
			class string
		)
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &class, &h.Level, &h.Experience, &h.CreatedAt,
			&h.OwnerName, &h.ItemCount); err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		h.Class = domain.HeroClass(class)
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate heroes: %w", err)
	}
	return heroes, nil
}

func (s *HeroStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hero, error) {
	var (
		h     domain.Hero
		class string
	)
	err := conn(ctx, s.db).QueryRow(ctx, `
		SELECT id, user_id, name, class, level, experience, created_at
		FROM heroes WHERE id = $1
	`, id).Scan(&h.ID, &h.UserID, &h.Name, &class, &h.Level, &h.Experience, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHeroNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}
	h.Class = domain.HeroClass(class)
	return &h, nil
}

func (s *HeroStore) Create(ctx context.Context, hero *domain.Hero) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		INSERT INTO heroes (id, user_id, name, class, level, experience, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, hero.ID, hero.UserID, hero.Name, string(hero.Class), hero.Level, hero.Experience, hero.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert hero: %w", err)
	}
	return nil
}

func (s *HeroStore) Update(ctx context.Context, hero *domain.Hero) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE heroes SET name = $2, class = $3, level = $4, experience = $5 WHERE id = $1
	`, hero.ID, hero.Name, string(hero.Class), hero.Level, hero.Experience)
	if err != nil {
		return fmt.Errorf("update hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHeroNotFound
	}
	return nil
}

func (s *HeroStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHeroNotFound
	}
	return nil
}
