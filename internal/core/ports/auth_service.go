package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SignUpInput carries the data needed to register a new account.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignInInput carries sign-in credentials. Exactly one of Email or Username
// must be set.
type SignInInput struct {
	Email    string
	Username string
	Password string
}

// UserProjection is the API-facing view of a user. ClanID and ClanName are
// nil when the user does not belong to a clan; HeroCount is 0 when heroes
// were not loaded on the lookup path.
type UserProjection struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ClanID    *uuid.UUID `json:"clan_id"`
	ClanName  *string    `json:"clan_name"`
	HeroCount int        `json:"hero_count"`
}

// AuthResult is returned by both sign-up and sign-in.
type AuthResult struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

// AuthService implements the sign-up and sign-in flows.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthResult, error)
}

// TokenParser establishes caller identity from a bearer token. ok is false
// when the token is malformed, incorrectly signed, or expired.
type TokenParser interface {
	Parse(token string) (userID uuid.UUID, ok bool)
}

// UpdateProfileInput carries the mutable fields of the current user.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// UserService exposes the current-user profile operations.
type UserService interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserProjection, error)
	UpdateCurrentUser(ctx context.Context, input UpdateProfileInput) (*UserProjection, error)
}
