package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// UserStore defines persistence operations for users. GetByID eager-loads the
// user's clan; GetByEmail and GetByUsername additionally load the hero count,
// since both feed the authenticated user projection.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
	// Update issues a targeted write of the mutable user columns
	// (username, email, clan_id).
	Update(ctx context.Context, user *domain.User) error
	// ClearClanMembers nulls the clan reference of every user in the given
	// clan. It participates in the transaction carried by ctx, if any.
	ClearClanMembers(ctx context.Context, clanID uuid.UUID) error
}
