package auth

import (
	"context"
	"slices"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/config"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CredentialStore = (*StaticCredentialStore)(nil)
	_ ports.PasswordHasher  = BcryptHasher{}
)

// BcryptHasher compares passwords against bcrypt hashes.
type BcryptHasher struct{}

// Compare returns nil when password matches hash.
func (BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// StaticCredentialStore serves the users listed in configuration.
type StaticCredentialStore struct {
	users map[string]auth.Credentials
}

// NewStaticCredentialStore indexes users by username. A later entry with the
// same username replaces an earlier one.
func NewStaticCredentialStore(users []config.UserConfig) *StaticCredentialStore {
	idx := make(map[string]auth.Credentials, len(users))
	for _, u := range users {
		idx[u.Username] = auth.Credentials{
			Principal: auth.Principal{
				Subject:  u.ID,
				Username: u.Username,
				Roles:    slices.Clone(u.Roles),
			},
			PasswordHash: u.PasswordHash,
		}
	}
	return &StaticCredentialStore{users: idx}
}

// FindByUsername implements ports.CredentialStore.
func (s *StaticCredentialStore) FindByUsername(_ context.Context, username string) (auth.Credentials, bool, error) {
	c, ok := s.users[username]
	if !ok {
		return auth.Credentials{}, false, nil
	}
	c.Principal.Roles = slices.Clone(c.Principal.Roles)
	return c, true, nil
}
