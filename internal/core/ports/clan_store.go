package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// ClanStore defines persistence operations for clans.
type ClanStore interface {
	// GetWithDetails returns the clan with its founder and members populated.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*domain.Clan, error)
	// ListAllWithFounder returns every clan with its founder and member count
	// populated, ordered by creation time.
	ListAllWithFounder(ctx context.Context) ([]domain.Clan, error)
	Create(ctx context.Context, clan *domain.Clan) error
	// Update issues a targeted write of name, tag and description only.
	// Level and founder are immutable through this path.
	Update(ctx context.Context, clan *domain.Clan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Transactor runs a function inside a single database transaction. Store
// methods called with the context passed to fn join that transaction, so a
// crash mid-way cannot leave a multi-step mutation half applied.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
