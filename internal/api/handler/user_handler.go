package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// UserHandler handles profile lookups.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me returns the caller's sanitized profile. The Authenticate middleware
// already reloaded it from the store this request, so no extra read happens.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ByRole lists users with the given role, e.g. collectors available for pickups.
//
// @Summary      List users by role
// @Tags         users
// @Produce      json
// @Security     ApiKeyAuth
// @Param        role  path      string  true  "Role"  Enums(user, startup, government, collector)
// @Success      200   {array}   domain.User
// @Failure      422   {object}  map[string]string
// @Router       /users/role/{role} [get]
func (h *UserHandler) ByRole(c echo.Context) error {
	role := domain.Role(c.Param("role"))
	if !role.Valid() {
		return &ValidationError{Details: []FieldError{{
			Field:   "role",
			Value:   string(role),
			Message: "role must be one of: user, startup, government, collector",
			Type:    "oneof",
		}}}
	}

	users, err := h.service.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
