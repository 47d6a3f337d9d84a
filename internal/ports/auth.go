package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
)

// CredentialStore looks up stored user credentials by username.
type CredentialStore interface {
	// FindByUsername returns the credentials for username. The boolean is
	// false when the user is unknown.
	FindByUsername(ctx context.Context, username string) (auth.Credentials, bool, error)
}

// TokenIssuer signs bearer tokens for an authenticated principal.
type TokenIssuer interface {
	Issue(principal auth.Principal, now time.Time) (*auth.Token, error)
}

// TokenVerifier validates a bearer token and returns its principal.
// Returns domain.ErrUnauthorized for malformed, tampered, or expired tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// PasswordHasher compares a plaintext password against a stored hash.
type PasswordHasher interface {
	Compare(hash, password string) error
}
