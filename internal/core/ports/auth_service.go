package ports

import (
	"context"
	"time"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Location string
	Contact  string
}

// TokenPair is issued on register and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService implements registration, login, token refresh and logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*TokenPair, *domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh verifies a refresh token and mints a short-lived access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the presented access token until its natural expiry.
	Logout(ctx context.Context, rawToken string, expiresAt time.Time) error
}
