package ports

import (
	"context"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// UserService defines profile lookup operations.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRole returns sanitized users with the given role (e.g. collector
	// discovery when booking a pickup).
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
