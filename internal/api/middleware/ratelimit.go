package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/api/metrics"
)

// RateLimiter caps authentication attempts per client IP within a fixed
// window. State is process memory only: a restart clears every window, which
// is a documented limitation of the platform, not a bug.
type RateLimiter struct {
	window time.Duration
	max    int
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing max attempts per window per IP.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

// allow records one attempt from origin and reports whether it is within the
// cap. An elapsed window resets the counter implicitly.
func (l *RateLimiter) allow(origin string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[origin]
	if !ok || now.Sub(e.start) >= l.window {
		l.entries[origin] = &windowEntry{start: now, count: 1}
		return true
	}

	e.count++
	return e.count <= l.max
}

// Middleware rejects over-limit requests with 429. Attach to auth routes only.
func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP()) {
				metrics.RateLimitedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, authErrorBody{
					Error:    "Too many authentication attempts",
					Solution: "Wait before retrying",
				})
			}
			return next(c)
		}
	}
}
