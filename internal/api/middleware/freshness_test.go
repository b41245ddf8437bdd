package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/pkg/token"
)

func runFreshness(t *testing.T, claims *token.Claims, maxAge time.Duration) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ContextClaims, claims)
	}

	called := false
	handler := RequireFreshToken(maxAge)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func issuedAgo(age time.Duration) *token.Claims {
	return &token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "u1",
			IssuedAt: jwt.NewNumericDate(time.Now().Add(-age)),
		},
		Role:      domain.RoleUser,
		TokenType: token.TypeAccess,
	}
}

func TestRequireFreshToken_Fresh(t *testing.T) {
	rec, called := runFreshness(t, issuedAgo(time.Minute), 15*time.Minute)
	if !called {
		t.Fatalf("fresh token should pass")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireFreshToken_Stale(t *testing.T) {
	rec, called := runFreshness(t, issuedAgo(time.Hour), 15*time.Minute)
	if called {
		t.Fatalf("stale token should be rejected")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireFreshToken_NoIssuedAt(t *testing.T) {
	claims := &token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		Role:             domain.RoleUser,
		TokenType:        token.TypeAccess,
	}
	rec, called := runFreshness(t, claims, 15*time.Minute)
	if !called {
		t.Fatalf("token without issued-at passes silently")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
