package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/heroboxai/herobox-api/internal/core/domain"
)

// In-memory stub stores shared by the service tests.

type stubUserStore struct {
	users     map[uuid.UUID]*domain.User
	createErr error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.ClanID != nil {
		id := *u.ClanID
		clone.ClanID = &id
	}
	return &clone
}

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserStore) Create(_ context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *stubUserStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *stubUserStore) ClearClanMembers(_ context.Context, clanID uuid.UUID) error {
	for _, u := range s.users {
		if u.ClanID != nil && *u.ClanID == clanID {
			u.ClanID = nil
		}
	}
	return nil
}

type stubClanStore struct {
	clans map[uuid.UUID]*domain.Clan
	users *stubUserStore
}

func newStubClanStore(users *stubUserStore) *stubClanStore {
	return &stubClanStore{clans: make(map[uuid.UUID]*domain.Clan), users: users}
}

func (s *stubClanStore) withDetails(c *domain.Clan) *domain.Clan {
	clone := *c
	if founder, ok := s.users.users[c.FounderID]; ok {
		clone.Founder = cloneUser(founder)
	}
	clone.Members = nil
	for _, u := range s.users.users {
		if u.ClanID != nil && *u.ClanID == c.ID {
			clone.Members = append(clone.Members, *cloneUser(u))
		}
	}
	sort.Slice(clone.Members, func(i, j int) bool {
		return clone.Members[i].Username < clone.Members[j].Username
	})
	clone.MemberCount = len(clone.Members)
	return &clone
}

func (s *stubClanStore) GetWithDetails(_ context.Context, id uuid.UUID) (*domain.Clan, error) {
	c, ok := s.clans[id]
	if !ok {
		return nil, domain.ErrClanNotFound
	}
	return s.withDetails(c), nil
}

func (s *stubClanStore) ListAllWithFounder(_ context.Context) ([]domain.Clan, error) {
	out := make([]domain.Clan, 0, len(s.clans))
	for _, c := range s.clans {
		out = append(out, *s.withDetails(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubClanStore) Create(_ context.Context, clan *domain.Clan) error {
	for _, c := range s.clans {
		if c.Name == clan.Name || c.Tag == clan.Tag {
			return domain.NewConflictError("name", "")
		}
	}
	clone := *clan
	s.clans[clan.ID] = &clone
	return nil
}

func (s *stubClanStore) Update(_ context.Context, clan *domain.Clan) error {
	c, ok := s.clans[clan.ID]
	if !ok {
		return domain.ErrClanNotFound
	}
	c.Name = clan.Name
	c.Tag = clan.Tag
	c.Description = clan.Description
	return nil
}

func (s *stubClanStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.clans[id]; !ok {
		return domain.ErrClanNotFound
	}
	delete(s.clans, id)
	return nil
}

// stubTransactor runs the function directly; the stub stores have no real
// transaction boundary.
type stubTransactor struct{}

func (stubTransactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
