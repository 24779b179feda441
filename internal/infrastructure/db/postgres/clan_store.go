package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// ClanStore implements ports.ClanStore on PostgreSQL.
type ClanStore struct {
	db DB
}

func NewClanStore(db DB) *ClanStore {
	return &ClanStore{db: db}
}

// GetWithDetails returns the clan with its founder and members populated.
func (s *ClanStore) GetWithDetails(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	q := conn(ctx, s.db)

	var (
		clan    domain.Clan
		founder domain.User
		fRole   string
		fStatus string
	)
	err := q.QueryRow(ctx, `
		SELECT c.id, c.name, c.tag, c.description, c.founder_id, c.level, c.created_at,
			f.id, f.username, f.email, f.role, f.status, f.created_at
		FROM clans c
		JOIN users f ON f.id = c.founder_id
		WHERE c.id = $1
	`, id).Scan(
		&clan.ID, &clan.Name, &clan.Tag, &clan.Description, &clan.FounderID, &clan.Level, &clan.CreatedAt,
		&founder.ID, &founder.Username, &founder.Email, &fRole, &fStatus, &founder.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get clan: %w", err)
	}
	founder.Role = domain.Role(fRole)
	founder.Status = domain.UserStatus(fStatus)
	clan.Founder = &founder

	rows, err := q.Query(ctx, `
		SELECT u.id, u.username, u.email, u.role, u.status, u.created_at, u.clan_id,
			(SELECT COUNT(*) FROM heroes h WHERE h.user_id = u.id) AS hero_count
		FROM users u
		WHERE u.clan_id = $1
		ORDER BY u.created_at
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get clan members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m            domain.User
			role, status string
		)
		if err := rows.Scan(&m.ID, &m.Username, &m.Email, &role, &status, &m.CreatedAt, &m.ClanID, &m.HeroCount); err != nil {
			return nil, fmt.Errorf("scan clan member: %w", err)
		}
		m.Role = domain.Role(role)
		m.Status = domain.UserStatus(status)
		clan.Members = append(clan.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clan members: %w", err)
	}

	clan.MemberCount = len(clan.Members)
	return &clan, nil
}

// ListAllWithFounder returns every clan with founder name and member count.
func (s *ClanStore) ListAllWithFounder(ctx context.Context) ([]domain.Clan, error) {
	rows, err := conn(ctx, s.db).Query(ctx, `
		SELECT c.id, c.name, c.tag, c.description, c.founder_id, c.level, c.created_at,
			f.username,
			(SELECT COUNT(*) FROM users m WHERE m.clan_id = c.id) AS member_count
		FROM clans c
		JOIN users f ON f.id = c.founder_id
		ORDER BY c.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list clans: %w", err)
	}
	defer rows.Close()

	clans := make([]domain.Clan, 0)
	for rows.Next() {
		var (
			c           domain.Clan
			founderName string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Tag, &c.Description, &c.FounderID, &c.Level, &c.CreatedAt,
			&founderName, &c.MemberCount); err != nil {
			return nil, fmt.Errorf("scan clan: %w", err)
		}
		c.Founder = &domain.User{ID: c.FounderID, Username: founderName}
		clans = append(clans, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clans: %w", err)
	}
	return clans, nil
}

func (s *ClanStore) Create(ctx context.Context, clan *domain.Clan) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		INSERT INTO clans (id, name, tag, description, founder_id, level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, clan.ID, clan.Name, clan.Tag, clan.Description, clan.FounderID, clan.Level, clan.CreatedAt)
	if err != nil {
		if conflict := asUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert clan: %w", err)
	}
	return nil
}

// Update writes name, tag and description only; level and founder are
// immutable through this path.
func (s *ClanStore) Update(ctx context.Context, clan *domain.Clan) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE clans SET name = $2, tag = $3, description = $4 WHERE id = $1
	`, clan.ID, clan.Name, clan.Tag, clan.Description)
	if err != nil {
		if conflict := asUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("update clan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClanNotFound
	}
	return nil
}

func (s *ClanStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `DELETE FROM clans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete clan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClanNotFound
	}
	return nil
}
