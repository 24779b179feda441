package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateClanInput carries the data needed to found a clan. FounderID is the
// authenticated caller, never taken from the request body.
type CreateClanInput struct {
	Name        string
	Tag         string
	Description string
	FounderID   uuid.UUID
}

// UpdateClanInput mutates name, tag and description of an existing clan.
// ID always comes from the route; the body carries no id at all.
type UpdateClanInput struct {
	ID            uuid.UUID
	Name          string
	Tag           string
	Description   string
	CurrentUserID uuid.UUID
}

// ClanProjection is the API-facing view of a clan.
type ClanProjection struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	Level       int       `json:"level"`
	FounderID   uuid.UUID `json:"founder_id"`
	FounderName string    `json:"founder_name"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClanMemberProjection is a single member in a clan's member listing.
type ClanMemberProjection struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	JoinedAt  time.Time `json:"joined_at"`
	HeroCount int       `json:"hero_count"`
}

// ClanService implements the clan lifecycle flows.
//
// GetByID reports a missing clan as domain.ErrClanNotFound while ListMembers
// returns an empty slice for the same situation; existing clients depend on
// both behaviours.
type ClanService interface {
	Create(ctx context.Context, input CreateClanInput) (*ClanProjection, error)
	Update(ctx context.Context, input UpdateClanInput) (*ClanProjection, error)
	// Delete reports success; a missing clan yields (false, nil).
	Delete(ctx context.Context, id, currentUserID uuid.UUID) (bool, error)
	List(ctx context.Context) ([]ClanProjection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ClanProjection, error)
	ListMembers(ctx context.Context, id uuid.UUID) ([]ClanMemberProjection, error)
}
