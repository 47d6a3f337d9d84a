// Package auth holds the authentication adapters: HS256 JWT issuing and
// verification, bcrypt password comparison, and a credential store backed by
// configuration.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TokenIssuer   = (*TokenManager)(nil)
	_ ports.TokenVerifier = (*TokenManager)(nil)
)

// DefaultTokenTTL applies when no TTL is configured.
const DefaultTokenTTL = time.Hour

type claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

// NewTokenManager creates a TokenManager. A non-positive ttl uses
// DefaultTokenTTL. When issuer is set, Verify requires a matching iss claim.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(opts...),
	}
}

// TTL returns the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for principal that expires ttl after now.
func (m *TokenManager) Issue(principal auth.Principal, now time.Time) (*auth.Token, error) {
	expiresAt := now.Add(m.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: principal.Username,
		Roles:    principal.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &auth.Token{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses and validates a signed token. Every failure wraps
// domain.ErrUnauthorized.
func (m *TokenManager) Verify(token string) (auth.Principal, error) {
	var c claims
	_, err := m.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if c.Subject == "" {
		return auth.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("token has no subject"))
	}

	return auth.Principal{
		Subject:  c.Subject,
		Username: c.Username,
		Roles:    c.Roles,
	}, nil
}
