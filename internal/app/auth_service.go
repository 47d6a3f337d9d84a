package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService exchanges username and password for a signed bearer token.
type AuthService struct {
	users  ports.CredentialStore
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	clock  ports.Clock
	logger *slog.Logger
}

// NewAuthService creates an AuthService. A nil clock falls back to the system
// clock and a nil logger discards output.
func NewAuthService(
	users ports.CredentialStore,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	clk ports.Clock,
	logger *slog.Logger,
) *AuthService {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		clock:  clk,
		logger: logger,
	}
}

// Login returns a token for valid credentials. Unknown users and wrong
// passwords both yield domain.ErrUnauthorized so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, username, password string) (*auth.Token, error) {
	creds, ok, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up credentials",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !ok {
		s.logger.WarnContext(ctx, "login rejected", slog.String("reason", "unknown user"))
		return nil, domain.ErrUnauthorized
	}

	if err := s.hasher.Compare(creds.PasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "login rejected",
			slog.String("reason", "password mismatch"),
			slog.String("subject", creds.Principal.Subject),
		)
		return nil, domain.ErrUnauthorized
	}

	token, err := s.issuer.Issue(creds.Principal, s.clock.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.String("subject", creds.Principal.Subject),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.InfoContext(ctx, "login succeeded", slog.String("subject", creds.Principal.Subject))
	return token, nil
}
