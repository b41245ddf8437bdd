package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist stores revoked (logged-out) access tokens until their natural
// expiry. Keys hold a SHA-256 of the raw token so the credential itself never
// lands in Redis. Key format: revoked:<hex digest>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke records the token as logged out. TTL should be the remaining token
// life; entries expire on their own once the token would be rejected anyway.
func (d *TokenDenylist) Revoke(ctx context.Context, rawToken string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(rawToken), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been logged out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(rawToken)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return "revoked:" + hex.EncodeToString(sum[:])
}
