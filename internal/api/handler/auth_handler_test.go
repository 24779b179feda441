package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/core/domain"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

type stubAuthService struct {
	signUpFn func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error)
	signInFn func(ctx context.Context, input ports.SignInInput) (*ports.AuthResult, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubAuthService) SignIn(ctx context.Context, input ports.SignInInput) (*ports.AuthResult, error) {
	return s.signInFn(ctx, input)
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
			if input.Username != "alice" || input.Email != "alice@example.com" || input.Password != "Str0ng!pass" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  ports.UserProjection{ID: userID, Username: "alice", Email: "alice@example.com", Role: "player", Status: "active"},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"Str0ng!pass"}`)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "player" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_SignUp_Conflict(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.NewConflictError("email", "email already registered")
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/signup", `{"username":"bob","email":"b@example.com","password":"Str0ng!pass"}`)

	err := h.SignUp(c)
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if conflict.Field != "email" {
		t.Fatalf("expected email conflict, got %s", conflict.Field)
	}
}

func TestAuthHandler_SignUp_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/signup", "not-json")

	err := h.SignUp(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, input ports.SignInInput) (*ports.AuthResult, error) {
			if input.Email != "alice@example.com" || input.Password != "Str0ng!pass" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{Token: "token123", User: ports.UserProjection{Username: "alice"}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/signin",
		`{"email":"alice@example.com","password":"Str0ng!pass"}`)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, input ports.SignInInput) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/signin", `{"email":"alice@example.com","password":"bad"}`)

	if err := h.SignIn(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthHandler_SignIn_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, input ports.SignInInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/signin", "{")

	err := h.SignIn(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
