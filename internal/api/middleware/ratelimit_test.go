package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func limiterRequest(t *testing.T, l *RateLimiter, ip string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := l.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec.Code
}

func TestRateLimiter_WithinCap(t *testing.T) {
	l := NewRateLimiter(15*time.Minute, 20)

	for i := 0; i < 20; i++ {
		if code := limiterRequest(t, l, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
}

func TestRateLimiter_OverCap(t *testing.T) {
	l := NewRateLimiter(15*time.Minute, 20)

	for i := 0; i < 20; i++ {
		limiterRequest(t, l, "10.0.0.2")
	}
	if code := limiterRequest(t, l, "10.0.0.2"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on attempt 21, got %d", code)
	}
}

func TestRateLimiter_PerOriginIsolation(t *testing.T) {
	l := NewRateLimiter(15*time.Minute, 20)

	for i := 0; i < 21; i++ {
		limiterRequest(t, l, "10.0.0.3")
	}
	if code := limiterRequest(t, l, "10.0.0.4"); code != http.StatusOK {
		t.Fatalf("other origin should not be limited, got %d", code)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	current := time.Now()
	l := NewRateLimiter(15*time.Minute, 20)
	l.now = func() time.Time { return current }

	for i := 0; i < 20; i++ {
		limiterRequest(t, l, "10.0.0.5")
	}
	if code := limiterRequest(t, l, "10.0.0.5"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 before window elapses, got %d", code)
	}

	current = current.Add(15*time.Minute + time.Second)
	if code := limiterRequest(t, l, "10.0.0.5"); code != http.StatusOK {
		t.Fatalf("expected fresh window after elapse, got %d", code)
	}
}
