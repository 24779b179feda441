package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// AuthService implements sign-up and sign-in.
type AuthService struct {
	users  ports.UserStore
	hasher *PasswordHasher
	tokens *TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserStore, hasher *PasswordHasher, tokens *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// SignUp registers a new account and returns an authenticated session.
// Uniqueness is pre-checked here and additionally enforced by the database's
// unique indexes, since two concurrent sign-ups can pass the pre-check.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, domain.NewValidationError("username", "username is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}
	if !validEmail(input.Email) {
		return nil, domain.NewValidationError("email", "invalid email format")
	}
	if !validPassword(input.Password) {
		return nil, domain.NewValidationError("password",
			"password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character")
	}

	if taken, err := s.users.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.NewConflictError("email", "")
	}
	if taken, err := s.users.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.NewConflictError("username", "")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RolePlayer,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("user signed up")

	return s.authResult(user)
}

// SignIn authenticates by email or username plus password. Not-found and
// wrong-password collapse into the same error so the response does not leak
// which check failed.
func (s *AuthService) SignIn(ctx context.Context, input ports.SignInInput) (*ports.AuthResult, error) {
	hasEmail := strings.TrimSpace(input.Email) != ""
	hasUsername := strings.TrimSpace(input.Username) != ""

	if !hasEmail && !hasUsername {
		return nil, domain.NewValidationError("identifier", "either email or username must be provided")
	}
	if hasEmail && hasUsername {
		return nil, domain.NewValidationError("identifier", "provide either email or username, not both")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}

	var (
		user *domain.User
		err  error
	)
	if hasEmail {
		user, err = s.users.GetByEmail(ctx, input.Email)
	} else {
		user, err = s.users.GetByUsername(ctx, input.Username)
	}
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user signed in")

	return s.authResult(user)
}

func (s *AuthService) authResult(user *domain.User) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: projectUser(user)}, nil
}

// projectUser maps a user entity to its API-facing projection.
func projectUser(user *domain.User) ports.UserProjection {
	p := ports.UserProjection{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		ClanID:    user.ClanID,
		HeroCount: user.HeroCount,
	}
	if user.Clan != nil {
		p.ClanName = &user.Clan.Name
	}
	return p
}

// validEmail checks the address is RFC-shaped and carries no display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
