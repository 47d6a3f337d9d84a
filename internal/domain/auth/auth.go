// Package auth holds the identity types produced by authentication.
package auth

import (
	"slices"
	"time"
)

// Principal is an authenticated caller.
type Principal struct {
	Subject  string
	Username string
	Roles    []string
}

// HasRole reports whether the principal carries role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// Token is a signed bearer credential issued to a principal.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Credentials is a stored user record. PasswordHash is a bcrypt hash.
type Credentials struct {
	Principal    Principal
	PasswordHash string
}
