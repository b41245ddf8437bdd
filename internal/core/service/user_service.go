package service

import (
	"context"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// UserService implements profile lookups. Responses are always sanitized.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}
