package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/api/middleware"
	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

type stubClanService struct {
	createFn  func(ctx context.Context, input ports.CreateClanInput) (*ports.ClanProjection, error)
	updateFn  func(ctx context.Context, input ports.UpdateClanInput) (*ports.ClanProjection, error)
	deleteFn  func(ctx context.Context, id, currentUserID uuid.UUID) (bool, error)
	listFn    func(ctx context.Context) ([]ports.ClanProjection, error)
	getFn     func(ctx context.Context, id uuid.UUID) (*ports.ClanProjection, error)
	membersFn func(ctx context.Context, id uuid.UUID) ([]ports.ClanMemberProjection, error)
}

func (s *stubClanService) Create(ctx context.Context, input ports.CreateClanInput) (*ports.ClanProjection, error) {
	return s.createFn(ctx, input)
}

func (s *stubClanService) Update(ctx context.Context, input ports.UpdateClanInput) (*ports.ClanProjection, error) {
	return s.updateFn(ctx, input)
}

func (s *stubClanService) Delete(ctx context.Context, id, currentUserID uuid.UUID) (bool, error) {
	return s.deleteFn(ctx, id, currentUserID)
}

func (s *stubClanService) List(ctx context.Context) ([]ports.ClanProjection, error) {
	return s.listFn(ctx)
}

func (s *stubClanService) GetByID(ctx context.Context, id uuid.UUID) (*ports.ClanProjection, error) {
	return s.getFn(ctx, id)
}

func (s *stubClanService) ListMembers(ctx context.Context, id uuid.UUID) ([]ports.ClanMemberProjection, error) {
	return s.membersFn(ctx, id)
}

func TestClanHandler_Create_Success(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	clanID := uuid.New()
	stub := &stubClanService{
		createFn: func(ctx context.Context, input ports.CreateClanInput) (*ports.ClanProjection, error) {
			if input.FounderID != userID {
				t.Fatalf("founder should come from the auth context, got %s", input.FounderID)
			}
			if input.Name != "Dragons" || input.Tag != "DRG" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ClanProjection{ID: clanID, Name: input.Name, Tag: input.Tag, FounderID: userID, MemberCount: 1}, nil
		},
	}
	h := NewClanHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/clans", `{"name":"Dragons","tag":"DRG","description":"Fire"}`)
	c.Set(middleware.UserIDKey, userID)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Dragons" || resp["member_count"] != float64(1) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestClanHandler_Create_MissingAuthContext(t *testing.T) {
	e := echo.New()
	stub := &stubClanService{
		createFn: func(ctx context.Context, input ports.CreateClanInput) (*ports.ClanProjection, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewClanHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/clans", `{"name":"Dragons","tag":"DRG"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestClanHandler_Update_RouteIDWins(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	routeID := uuid.New()
	stub := &stubClanService{
		updateFn: func(ctx context.Context, input ports.UpdateClanInput) (*ports.ClanProjection, error) {
			if input.ID != routeID {
				t.Fatalf("expected route id %s, got %s", routeID, input.ID)
			}
			if input.CurrentUserID != userID {
				t.Fatalf("expected caller %s, got %s", userID, input.CurrentUserID)
			}
			return &ports.ClanProjection{ID: input.ID, Name: input.Name}, nil
		},
	}
	h := NewClanHandler(stub)

	c, rec := jsonRequest(e, http.MethodPut, "/api/clans/"+routeID.String(), `{"name":"Renamed","tag":"RNM"}`)
	c.SetParamNames("id")
	c.SetParamValues(routeID.String())
	c.Set(middleware.UserIDKey, userID)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestClanHandler_Update_Forbidden(t *testing.T) {
	e := echo.New()
	stub := &stubClanService{
		updateFn: func(ctx context.Context, input ports.UpdateClanInput) (*ports.ClanProjection, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewClanHandler(stub)

	id := uuid.New()
	c, _ := jsonRequest(e, http.MethodPut, "/api/clans/"+id.String(), `{"name":"Renamed","tag":"RNM"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set(middleware.UserIDKey, uuid.New())

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestClanHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	clanID := uuid.New()
	stub := &stubClanService{
		deleteFn: func(ctx context.Context, id, currentUserID uuid.UUID) (bool, error) {
			if id != clanID || currentUserID != userID {
				t.Fatalf("unexpected args: %s %s", id, currentUserID)
			}
			return true, nil
		},
	}
	h := NewClanHandler(stub)

	c, rec := jsonRequest(e, http.MethodDelete, "/api/clans/"+clanID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(clanID.String())
	c.Set(middleware.UserIDKey, userID)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestClanHandler_Delete_Missing(t *testing.T) {
	e := echo.New()
	stub := &stubClanService{
		deleteFn: func(ctx context.Context, id, currentUserID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	h := NewClanHandler(stub)

	id := uuid.New()
	c, _ := jsonRequest(e, http.MethodDelete, "/api/clans/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set(middleware.UserIDKey, uuid.New())

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestClanHandler_Get_InvalidID(t *testing.T) {
	e := echo.New()
	stub := &stubClanService{
		getFn: func(ctx context.Context, id uuid.UUID) (*ports.ClanProjection, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewClanHandler(stub)

	c, _ := jsonRequest(e, http.MethodGet, "/api/clans/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestClanHandler_Members_EmptyForMissingClan(t *testing.T) {
	e := echo.New()
	stub := &stubClanService{
		membersFn: func(ctx context.Context, id uuid.UUID) ([]ports.ClanMemberProjection, error) {
			return []ports.ClanMemberProjection{}, nil
		},
	}
	h := NewClanHandler(stub)

	id := uuid.New()
	c, rec := jsonRequest(e, http.MethodGet, "/api/clans/"+id.String()+"/members", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := h.Members(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty list, got %q", body)
	}
}
