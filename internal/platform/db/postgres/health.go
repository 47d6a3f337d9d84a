package postgres

import (
	"context"
	"fmt"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports whether the database answers a ping.
type HealthChecker struct {
	pool Pinger
}

// NewHealthChecker wraps pool as a ports.HealthChecker.
func NewHealthChecker(pool Pinger) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string {
	return "postgres"
}

// HealthCheck pings the database.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}
	return nil
}
