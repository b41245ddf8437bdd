package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/api/handler"
	"github.com/chemba/waste-platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string `json:"error"`
	Solution string `json:"solution,omitempty"`
}

// validationResponse carries the structured field failure list on 422s.
type validationResponse struct {
	Error   string               `json:"error"`
	Details []handler.FieldError `json:"details"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 422 with the structured detail list.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors; outside development mode their detail is
//     stripped to a generic message.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusUnprocessableEntity, validationResponse{
				Error:   "Validation failed",
				Details: ve.Details,
			})
			return
		}

		code, body := resolveError(err, log, c, development)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{
			Error:    "invalid credentials",
			Solution: "Please login or provide valid credentials",
		}
	case errors.Is(err, domain.ErrUserSuspended):
		return http.StatusUnauthorized, errorResponse{
			Error:    "account suspended",
			Solution: "Contact support to reactivate your account",
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, errorResponse{Error: "waste report not found"}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity, errorResponse{
			Error:    "not enough points",
			Solution: "Report more waste to earn points before scheduling a pickup",
		}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if development {
		return http.StatusInternalServerError, errorResponse{Error: err.Error()}
	}
	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
