package ports

import "context"

// HealthChecker reports the health of one backing component, such as the
// Postgres pool or a storage circuit breaker.
type HealthChecker interface {
	// Name identifies the component in readiness output.
	Name() string
	// HealthCheck returns nil when the component can serve requests.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them on each
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
