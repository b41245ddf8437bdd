// Package token wraps issuance and verification of the platform's bearer
// tokens. Access and refresh tokens are signed with separate secrets and
// carry a type claim so one can never stand in for the other.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// Type distinguishes the two token kinds in circulation.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

// Claims is the only claims shape this service signs or accepts.
// Subject carries the user id; IssuedAt feeds the freshness gate.
type Claims struct {
	jwt.RegisteredClaims

	Role      domain.Role `json:"role"`
	TokenType Type        `json:"token_type"`
}

// Codec signs and verifies bearer tokens.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewCodec returns a Codec using the given signing secrets.
func NewCodec(accessSecret, refreshSecret string) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

// IssueAccess signs an access token for the user with the given lifetime.
func (c *Codec) IssueAccess(userID string, role domain.Role, ttl time.Duration) (string, error) {
	return c.issue(userID, role, TypeAccess, ttl, c.accessSecret)
}

// IssueRefresh signs a refresh token for the user with the given lifetime.
func (c *Codec) IssueRefresh(userID string, role domain.Role, ttl time.Duration) (string, error) {
	return c.issue(userID, role, TypeRefresh, ttl, c.refreshSecret)
}

func (c *Codec) issue(userID string, role domain.Role, typ Type, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:      role,
		TokenType: typ,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccess parses and validates an access token.
// Errors wrap the jwt sentinel errors so callers can distinguish an expired
// token (jwt.ErrTokenExpired) from a malformed or tampered one.
func (c *Codec) VerifyAccess(raw string) (*Claims, error) {
	return c.verify(raw, TypeAccess, c.accessSecret)
}

// VerifyRefresh parses and validates a refresh token.
func (c *Codec) VerifyRefresh(raw string) (*Claims, error) {
	return c.verify(raw, TypeRefresh, c.refreshSecret)
}

func (c *Codec) verify(raw string, typ Type, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != typ {
		return nil, fmt.Errorf("%w: wrong token type", jwt.ErrTokenInvalidClaims)
	}
	return claims, nil
}
