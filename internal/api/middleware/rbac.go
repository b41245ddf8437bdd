package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// forbiddenBody discloses the required role set and the caller's role.
// Deliberate debugging aid carried over from the platform's API contract.
type forbiddenBody struct {
	Error         string        `json:"error"`
	RequiredRoles []domain.Role `json:"required_roles"`
	YourRole      domain.Role   `json:"your_role"`
}

// RequireRoles enforces role-based access on routes behind Authenticate.
// The allow set is flat; membership, not hierarchy, decides.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUser).(domain.User)
			if !ok {
				return authError(c, "Authentication required")
			}

			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, forbiddenBody{
					Error:         "Forbidden: Insufficient permissions",
					RequiredRoles: allowedRoles,
					YourRole:      user.Role,
				})
			}
			return next(c)
		}
	}
}
