package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/api/middleware"
	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/pkg/token"
)

// currentUser extracts the sanitized user attached by the Authenticate
// middleware. Its presence proves the middleware ran; absence on a protected
// route means the chain was miswired, so the request is rejected rather than
// served with no identity.
func currentUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(middleware.ContextUser).(domain.User)
	if !ok {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

// currentToken extracts the verified claims and the raw credential, both
// needed by logout to denylist the token for its remaining life.
func currentToken(c echo.Context) (*token.Claims, string, error) {
	claims, ok := c.Get(middleware.ContextClaims).(*token.Claims)
	if !ok {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	raw, _ := c.Get(middleware.ContextRawToken).(string)
	return claims, raw, nil
}
