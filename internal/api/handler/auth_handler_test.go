package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/api/middleware"
	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
	"github.com/chemba/waste-platform/internal/pkg/token"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.TokenPair, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error)
	refreshFn  func(ctx context.Context, refreshToken string) (string, error)
	logoutFn   func(ctx context.Context, rawToken string, expiresAt time.Time) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.TokenPair, *domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubAuthService) Logout(ctx context.Context, rawToken string, expiresAt time.Time) error {
	return s.logoutFn(ctx, rawToken, expiresAt)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.TokenPair, *domain.User, error) {
			if in.Name != "Alice" || in.Role != domain.RoleUser {
				t.Fatalf("unexpected input: %+v", in)
			}
			user := &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: in.Role, Status: domain.UserActive}
			return &ports.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, user, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1","role":"user"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "access" || resp["refresh_token"] != "refresh" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u1" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password material leaked: %+v", user)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.TokenPair, *domain.User, error) {
			t.Fatalf("service should not be reached")
			return nil, nil, nil
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"short","role":"admin"}`)
	err := h.Register(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if !hasFieldError(ve.Details, "password", "min") || !hasFieldError(ve.Details, "role", "oneof") {
		t.Fatalf("unexpected details: %+v", ve.Details)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
			if email != "bob@example.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			user := &domain.User{ID: "u2", Email: email, Role: domain.RoleCollector, Status: domain.UserActive}
			return &ports.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, user, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.TokenPair, *domain.User, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(_ context.Context, refreshToken string) (string, error) {
			if refreshToken != "the-refresh-token" {
				t.Fatalf("unexpected refresh token: %s", refreshToken)
			}
			return "new-access", nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/refresh",
		`{"refresh_token":"the-refresh-token"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "new-access" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	revoked := false
	h := NewAuthHandler(&stubAuthService{
		logoutFn: func(_ context.Context, rawToken string, expiresAt time.Time) error {
			revoked = true
			if rawToken != "raw-token" {
				t.Fatalf("unexpected raw token: %s", rawToken)
			}
			if !expiresAt.Equal(expiry) {
				t.Fatalf("unexpected expiry: %v", expiresAt)
			}
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.ContextClaims, &token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		Role:      domain.RoleUser,
		TokenType: token.TypeAccess,
	})
	c.Set(middleware.ContextRawToken, "raw-token")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !revoked {
		t.Fatalf("logout never reached the service")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
