// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Company *handlers.CompanyHandler
	Auth    *handlers.AuthHandler
	Docs    *handlers.DocsHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Routes under /api/v1
// require a bearer token accepted by verifier. The login route is throttled
// by loginLimiter; a nil limiter disables throttling.
func NewRouter(
	h Handlers,
	verifier ports.TokenVerifier,
	loginLimiter *rate.Limiter,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Get("/api/docs/openapi.yaml", h.Docs.OpenAPI)

	r.With(middleware.RateLimit(loginLimiter)).Post("/auth/login", h.Auth.Login)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier))

		r.Get("/companies/transfers/last-month", h.Company.ListWithRecentTransfers)
		r.Get("/companies/adhesions/last-month", h.Company.ListAdheredRecently)
		r.Post("/companies/adhesions", h.Company.Register)
	})

	return r
}
