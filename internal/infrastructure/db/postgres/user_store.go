package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// UserStore implements ports.UserStore on PostgreSQL.
type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

const userWithClanColumns = `
	u.id, u.username, u.email, u.password_hash, u.role, u.status, u.created_at, u.clan_id,
	c.name`

// GetByID returns the user with their clan name eager-loaded.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := conn(ctx, s.db).QueryRow(ctx, `
		SELECT`+userWithClanColumns+`, 0 AS hero_count
		FROM users u
		LEFT JOIN clans c ON c.id = u.clan_id
		WHERE u.id = $1
	`, id)
	return scanUser(row)
}

// GetByEmail returns the user with clan and hero count eager-loaded, since
// this path feeds the authenticated user projection.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := conn(ctx, s.db).QueryRow(ctx, `
		SELECT`+userWithClanColumns+`,
			(SELECT COUNT(*) FROM heroes h WHERE h.user_id = u.id) AS hero_count
		FROM users u
		LEFT JOIN clans c ON c.id = u.clan_id
		WHERE u.email = $1
	`, email)
	return scanUser(row)
}

// GetByUsername mirrors GetByEmail for the username identifier.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := conn(ctx, s.db).QueryRow(ctx, `
		SELECT`+userWithClanColumns+`,
			(SELECT COUNT(*) FROM heroes h WHERE h.user_id = u.id) AS hero_count
		FROM users u
		LEFT JOIN clans c ON c.id = u.clan_id
		WHERE u.username = $1
	`, username)
	return scanUser(row)
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := conn(ctx, s.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := conn(ctx, s.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by username: %w", err)
	}
	return exists, nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, role, status, created_at, clan_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		string(user.Role), string(user.Status), user.CreatedAt, user.ClanID,
	)
	if err != nil {
		if conflict := asUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update writes the mutable user columns only.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	tag, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE users SET username = $2, email = $3, clan_id = $4 WHERE id = $1
	`, user.ID, user.Username, user.Email, user.ClanID)
	if err != nil {
		if conflict := asUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ClearClanMembers nulls the clan reference of every member of the clan.
func (s *UserStore) ClearClanMembers(ctx context.Context, clanID uuid.UUID) error {
	_, err := conn(ctx, s.db).Exec(ctx,
		`UPDATE users SET clan_id = NULL WHERE clan_id = $1`, clanID,
	)
	if err != nil {
		return fmt.Errorf("clear clan members: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u        domain.User
		role     string
		status   string
		clanName *string
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &status,
		&u.CreatedAt, &u.ClanID, &clanName, &u.HeroCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.Role = domain.Role(role)
	u.Status = domain.UserStatus(status)
	if u.ClanID != nil && clanName != nil {
		u.Clan = &domain.Clan{ID: *u.ClanID, Name: *clanName}
	}
	return &u, nil
}

// asUniqueViolation maps a unique-index violation to the domain conflict
// error for the offending field. Pre-checks in the services are racy under
// concurrent requests; the database constraint is the authority.
func asUniqueViolation(err error) *domain.ConflictError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	for _, field := range []string{"username", "email", "name", "tag"} {
		if strings.Contains(pgErr.ConstraintName, field) {
			return domain.NewConflictError(field, "")
		}
	}
	return domain.NewConflictError(pgErr.ConstraintName, "")
}
