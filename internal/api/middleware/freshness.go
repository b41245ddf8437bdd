package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/pkg/token"
)

// RequireFreshToken rejects tokens issued more than maxAge ago, forcing a
// re-login before sensitive operations. A token without an issued-at claim
// passes silently; the codec always stamps one, so this only concerns tokens
// minted elsewhere.
func RequireFreshToken(maxAge time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextClaims).(*token.Claims)
			if ok && claims.IssuedAt != nil {
				if time.Since(claims.IssuedAt.Time) > maxAge {
					return c.JSON(http.StatusUnauthorized, authErrorBody{
						Error:    "Stale token",
						Solution: "Re-authenticate for this sensitive operation",
					})
				}
			}
			return next(c)
		}
	}
}
