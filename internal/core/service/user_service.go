package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// UserService implements the current-user profile operations.
type UserService struct {
	users  ports.UserStore
	logger zerolog.Logger
}

func NewUserService(users ports.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// GetCurrentUser returns the authenticated caller's projection.
func (s *UserService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*ports.UserProjection, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := projectUser(user)
	return &p, nil
}

// UpdateCurrentUser changes the caller's username and email. A value already
// held by another user is a conflict; keeping one's own value is fine.
func (s *UserService) UpdateCurrentUser(ctx context.Context, input ports.UpdateProfileInput) (*ports.UserProjection, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, domain.NewValidationError("username", "username is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if !validEmail(input.Email) {
		return nil, domain.NewValidationError("email", "invalid email format")
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if user.Username != input.Username {
		if taken, err := s.users.ExistsByUsername(ctx, input.Username); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.NewConflictError("username", "")
		}
	}
	if user.Email != input.Email {
		if taken, err := s.users.ExistsByEmail(ctx, input.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.NewConflictError("email", "")
		}
	}

	user.Username = input.Username
	user.Email = input.Email

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID.String()).Msg("failed to update user")
		return nil, err
	}

	p := projectUser(user)
	return &p, nil
}
