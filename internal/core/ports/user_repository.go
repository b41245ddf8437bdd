package ports

import (
	"context"
	"time"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	// AddPoints atomically adjusts the user's point balance by delta.
	AddPoints(ctx context.Context, id string, delta int) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
