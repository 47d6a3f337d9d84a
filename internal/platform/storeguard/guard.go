// Package storeguard wraps calls to durable storage with a circuit breaker,
// an OpenTelemetry span, and operation metrics.
//
// Construction:
//
//	guard := storeguard.New("postgres", cfg.Storage.Breaker, metrics, logger)
//
// Executing operations:
//
//	err := guard.Do(ctx, "companies.save", func(ctx context.Context) error { ... })
//	rows, err := storeguard.Run(ctx, guard, "companies.find_all", func(ctx context.Context) ([]row, error) { ... })
//
// A nil *Guard runs operations directly, which keeps adapters usable in tests
// without any instrumentation.
package storeguard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/config"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/telemetry"
)

// Guard protects one storage backend.
type Guard struct {
	system  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Guard for the named storage system (e.g., "postgres").
// If metrics is nil, metric recording is skipped.
func New(system string, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        system,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Callers giving up is not a storage failure.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Guard{
		system:  system,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn under the breaker. When the breaker rejects the call the
// returned error wraps domain.ErrUnavailable.
func (g *Guard) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if g == nil {
		return fn(ctx)
	}

	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := g.startSpan(ctx, operation)
		defer span.End()

		opErr := fn(spanCtx)
		if opErr != nil {
			span.RecordError(opErr)
			span.SetStatus(codes.Error, opErr.Error())
		}
		return struct{}{}, opErr
	})

	g.recordMetrics(ctx, operation, start, err)

	if isRejected(err) {
		return fmt.Errorf("%s %s: %w: %w", g.system, operation, domain.ErrUnavailable, err)
	}
	return err
}

// Run is the value-returning form of Guard.Do.
func Run[T any](ctx context.Context, g *Guard, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := g.Do(ctx, operation, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// Name returns the storage system identifier. Together with HealthCheck it
// satisfies ports.HealthChecker.
func (g *Guard) Name() string {
	return g.system
}

// HealthCheck reports storage availability from the breaker state without
// touching the backend.
//
// State mapping:
//   - "closed"    returns nil.
//   - "half-open" returns an error describing a degraded backend.
//   - "open"      returns an error describing a failing backend.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.system)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.system)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.system, state)
	}
}

func (g *Guard) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("storeguard")

	return tracer.Start(ctx, g.system+" "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.system),
			attribute.String("db.operation", operation),
		),
	)
}

// recordMetrics runs outside the breaker so that rejections are counted too.
func (g *Guard) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isRejected(err):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(g.system),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	g.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
