package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/auth"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/logging"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

type principalKey struct{}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by Authenticate.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}

// Authenticate returns middleware that requires an "Authorization: Bearer"
// header carrying a token accepted by verifier. Rejected requests receive a
// 401 Problem Details response. The request logger gains a subject attribute.
func Authenticate(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "bearer token rejected")
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthorized))
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("subject", principal.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized)
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: malformed authorization header", domain.ErrUnauthorized)
	}
	return strings.TrimSpace(token), nil
}
