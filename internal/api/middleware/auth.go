package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/pkg/token"
)

// Context keys set by Authenticate for downstream gates and handlers.
const (
	ContextUser     = "auth_user"
	ContextClaims   = "auth_claims"
	ContextRawToken = "auth_raw_token"
)

// UserLoader reloads a user record by id. Satisfied by ports.UserRepository.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RevocationChecker reports whether a token has been logged out.
// Satisfied by the Redis denylist. May be nil to skip the check.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}

// authErrorBody is the uniform envelope for every authentication rejection.
// Clients must key off the status, not the message text.
type authErrorBody struct {
	Error    string `json:"error"`
	Solution string `json:"solution"`
}

func authError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, authErrorBody{
		Error:    message,
		Solution: "Please login or provide valid credentials",
	})
}

// Authenticate verifies the bearer token, reloads the user record and attaches
// the sanitized user plus the verified claims to the request context.
//
// Token sources, in precedence order: the x-auth-token header, the token
// cookie, the token query parameter. The user is reloaded from the store on
// every request so revoked roles or suspensions take effect immediately.
func Authenticate(codec *token.Codec, users UserLoader, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return authError(c, "No authentication token provided")
			}

			claims, err := codec.VerifyAccess(raw)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					return authError(c, "Session expired. Please login again")
				case errors.Is(err, jwt.ErrTokenMalformed),
					errors.Is(err, jwt.ErrTokenSignatureInvalid),
					errors.Is(err, jwt.ErrTokenInvalidClaims):
					return authError(c, "Invalid token detected")
				default:
					return authError(c, "Authentication processing failed")
				}
			}

			if claims.Subject == "" {
				return authError(c, "Malformed token payload")
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), raw)
				if err != nil {
					return authError(c, "Authentication processing failed")
				}
				if isRevoked {
					return authError(c, "Token has been revoked")
				}
			}

			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				return authError(c, "User no longer exists")
			}
			if user.Status != domain.UserActive {
				return authError(c, "Account suspended")
			}

			c.Set(ContextUser, user.Sanitized())
			c.Set(ContextClaims, claims)
			c.Set(ContextRawToken, raw)

			return next(c)
		}
	}
}

// extractToken returns the first non-empty token source.
func extractToken(c echo.Context) string {
	if v := c.Request().Header.Get("x-auth-token"); v != "" {
		return v
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return c.QueryParam("token")
}
