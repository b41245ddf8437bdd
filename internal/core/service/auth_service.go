package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/api/metrics"
	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
	"github.com/chemba/waste-platform/internal/pkg/token"
)

// TokenRevoker abstracts the logout denylist (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, rawToken string, ttl time.Duration) error
}

// AuthTTLs bundles the lifetimes of the three token shapes in use:
// login-issued access tokens, refresh-minted access tokens, refresh tokens.
type AuthTTLs struct {
	Access        time.Duration
	RefreshAccess time.Duration
	Refresh       time.Duration
}

// AuthService implements registration, login, refresh and logout.
type AuthService struct {
	repo    ports.UserRepository
	codec   *token.Codec
	revoker TokenRevoker
	ttls    AuthTTLs
	log     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, revoker TokenRevoker, ttls AuthTTLs, log zerolog.Logger) *AuthService {
	if ttls.Access <= 0 {
		ttls.Access = 120 * time.Hour
	}
	if ttls.RefreshAccess <= 0 {
		ttls.RefreshAccess = 15 * time.Minute
	}
	if ttls.Refresh <= 0 {
		ttls.Refresh = 720 * time.Hour
	}
	return &AuthService{repo: repo, codec: codec, revoker: revoker, ttls: ttls, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.TokenPair, *domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !in.Role.Valid() {
		return nil, nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       domain.UserActive,
		Location:     in.Location,
		Contact:      in.Contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(created)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return pair, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.UserActive {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, nil, domain.ErrUserSuspended
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return pair, user, nil
}

// Refresh verifies a refresh token against the refresh secret and mints a
// short-lived access token for the same user and role.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	// The account may have been suspended since the refresh token was issued.
	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", err
	}
	if user.Status != domain.UserActive {
		return "", domain.ErrUserSuspended
	}

	return s.codec.IssueAccess(user.ID, user.Role, s.ttls.RefreshAccess)
}

// Logout denylists the presented access token for the remainder of its life.
// Tokens already past expiry need no denylist entry.
func (s *AuthService) Logout(ctx context.Context, rawToken string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, rawToken, ttl)
}

func (s *AuthService) issuePair(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.codec.IssueAccess(user.ID, user.Role, s.ttls.Access)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.IssueRefresh(user.ID, user.Role, s.ttls.Refresh)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
