package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// ClanService implements the clan lifecycle flows.
type ClanService struct {
	clans  ports.ClanStore
	users  ports.UserStore
	tx     ports.Transactor
	logger zerolog.Logger
}

func NewClanService(clans ports.ClanStore, users ports.UserStore, tx ports.Transactor, logger zerolog.Logger) *ClanService {
	return &ClanService{clans: clans, users: users, tx: tx, logger: logger}
}

// Create founds a new clan. The clan row and the founder's membership update
// are committed as one transaction.
func (s *ClanService) Create(ctx context.Context, input ports.CreateClanInput) (*ports.ClanProjection, error) {
	if err := validateClanFields(input.Name, input.Tag, input.Description); err != nil {
		return nil, err
	}

	founder, err := s.users.GetByID(ctx, input.FounderID)
	if err != nil {
		return nil, err
	}
	if founder.ClanID != nil {
		return nil, domain.NewConflictError("clan", "user is already a member of a clan")
	}

	clan := &domain.Clan{
		ID:          uuid.New(),
		Name:        input.Name,
		Tag:         input.Tag,
		Description: input.Description,
		FounderID:   input.FounderID,
		Level:       1,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.clans.Create(ctx, clan); err != nil {
			return err
		}
		founder.ClanID = &clan.ID
		return s.users.Update(ctx, founder)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create clan")
		return nil, err
	}

	s.logger.Info().Str("clan_id", clan.ID.String()).Str("founder_id", input.FounderID.String()).Msg("clan created")

	created, err := s.clans.GetWithDetails(ctx, clan.ID)
	if err != nil {
		return nil, err
	}

	p := projectClan(created)
	// The founder is the only member right now, regardless of whether the
	// freshly loaded members collection already reflects the membership.
	p.MemberCount = 1
	return &p, nil
}

// Update mutates name, tag and description. Only the founder may update the
// clan; level and founder are immutable through this path.
func (s *ClanService) Update(ctx context.Context, input ports.UpdateClanInput) (*ports.ClanProjection, error) {
	if err := validateClanFields(input.Name, input.Tag, input.Description); err != nil {
		return nil, err
	}

	clan, err := s.clans.GetWithDetails(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if clan.FounderID != input.CurrentUserID {
		return nil, domain.ErrForbidden
	}

	clan.Name = input.Name
	clan.Tag = input.Tag
	clan.Description = input.Description

	if err := s.clans.Update(ctx, clan); err != nil {
		s.logger.Error().Err(err).Str("clan_id", input.ID.String()).Msg("failed to update clan")
		return nil, err
	}

	p := projectClan(clan)
	return &p, nil
}

// Delete removes a clan after clearing every member's clan reference. Both
// steps run in one transaction so a crash cannot leave members pointing at a
// deleted clan. A missing clan yields (false, nil).
func (s *ClanService) Delete(ctx context.Context, id, currentUserID uuid.UUID) (bool, error) {
	clan, err := s.clans.GetWithDetails(ctx, id)
	if err != nil {
		if err == domain.ErrClanNotFound {
			return false, nil
		}
		return false, err
	}
	if clan.FounderID != currentUserID {
		return false, domain.ErrForbidden
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.users.ClearClanMembers(ctx, id); err != nil {
			return err
		}
		return s.clans.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("clan_id", id.String()).Msg("failed to delete clan")
		return false, err
	}

	s.logger.Info().Str("clan_id", id.String()).Int("members_cleared", len(clan.Members)).Msg("clan deleted")
	return true, nil
}

// List returns every clan with founder name and member count.
func (s *ClanService) List(ctx context.Context) ([]ports.ClanProjection, error) {
	clans, err := s.clans.ListAllWithFounder(ctx)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.ClanProjection, 0, len(clans))
	for i := range clans {
		projections = append(projections, projectClan(&clans[i]))
	}
	return projections, nil
}

// GetByID returns a single clan projection, or domain.ErrClanNotFound.
func (s *ClanService) GetByID(ctx context.Context, id uuid.UUID) (*ports.ClanProjection, error) {
	clan, err := s.clans.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	p := projectClan(clan)
	return &p, nil
}

// ListMembers returns the clan's member listing. A missing clan yields an
// empty slice, not an error.
func (s *ClanService) ListMembers(ctx context.Context, id uuid.UUID) ([]ports.ClanMemberProjection, error) {
	clan, err := s.clans.GetWithDetails(ctx, id)
	if err != nil {
		if err == domain.ErrClanNotFound {
			return []ports.ClanMemberProjection{}, nil
		}
		return nil, err
	}

	members := make([]ports.ClanMemberProjection, 0, len(clan.Members))
	for _, m := range clan.Members {
		members = append(members, ports.ClanMemberProjection{
			ID:        m.ID,
			Username:  m.Username,
			Email:     m.Email,
			Role:      string(m.Role),
			Status:    string(m.Status),
			JoinedAt:  m.CreatedAt,
			HeroCount: m.HeroCount,
		})
	}
	return members, nil
}

func validateClanFields(name, tag, description string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", "clan name is required")
	}
	if strings.TrimSpace(tag) == "" {
		return domain.NewValidationError("tag", "clan tag is required")
	}
	if strings.TrimSpace(description) == "" {
		return domain.NewValidationError("description", "clan description is required")
	}
	return nil
}

func projectClan(clan *domain.Clan) ports.ClanProjection {
	founderName := "Unknown"
	if clan.Founder != nil {
		founderName = clan.Founder.Username
	}
	return ports.ClanProjection{
		ID:          clan.ID,
		Name:        clan.Name,
		Tag:         clan.Tag,
		Description: clan.Description,
		Level:       clan.Level,
		FounderID:   clan.FounderID,
		FounderName: founderName,
		MemberCount: clan.MemberCount,
		CreatedAt:   clan.CreatedAt,
	}
}
