package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// ItemStore implements ports.ItemStore on PostgreSQL.
type ItemStore struct {
	db DB
}

func NewItemStore(db DB) *ItemStore {
	return &ItemStore{db: db}
}

const itemColumns = `id, hero_id, name, description, type, rarity, required_level, quantity, is_equipped, acquired_at`

func (s *ItemStore) ListAll(ctx context.Context) ([]domain.Item, error) {
	rows, err := conn(ctx, s.db).Query(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY acquired_at`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func (s *ItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	row := conn(ctx, s.db).QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	return item, err
}

func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		item.ID, item.HeroID, item.Name, item.Description, string(item.Type),
		string(item.Rarity), item.RequiredLevel, item.Quantity, item.IsEquipped, item.AcquiredAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *ItemStore) Update(ctx context.Context, item *domain.Item) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE items
		SET name = $2, description = $3, type = $4, rarity = $5,
			required_level = $6, quantity = $7, is_equipped = $8
		WHERE id = $1
	`,
		item.ID, item.Name, item.Description, string(item.Type), string(item.Rarity),
		item.RequiredLevel, item.Quantity, item.IsEquipped,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item   domain.Item
		typ    string
		rarity string
	)
	err := row.Scan(
		&item.ID, &item.HeroID, &item.Name, &item.Description, &typ, &rarity,
		&item.RequiredLevel, &item.Quantity, &item.IsEquipped, &item.AcquiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	item.Type = domain.ItemType(typ)
	item.Rarity = domain.ItemRarity(rarity)
	return &item, nil
}
