package domain

import "errors"

// Sentinel errors. Services and repositories return these; the HTTP error
// handler maps each to a fixed status and response envelope.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserSuspended      = errors.New("account suspended")

	ErrReportNotFound    = errors.New("waste report not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrInsufficientPoints = errors.New("not enough points")

	ErrForbidden = errors.New("access forbidden")
)
