package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a token pair.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Location: req.Location,
		Contact:  req.Contact,
	})
	if err != nil {
		return err
	}

	sanitized := user.Sanitized()
	return c.JSON(http.StatusCreated, authResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         &sanitized,
	})
}

// Login authenticates a user and returns a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	sanitized := user.Sanitized()
	return c.JSON(http.StatusOK, authResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         &sanitized,
	})
}

// Refresh mints a short-lived access token from a refresh token.
//
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	access, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: access})
}

// Logout revokes the presented token until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, raw, err := currentToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), raw, claims.ExpiresAt.Time); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}
