// Package main is the entry point for the HTTP API. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/company-adhesion-service/api"
	authadapter "github.com/jsamuelsen11/company-adhesion-service/internal/adapters/auth"
	adapthttp "github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http"
	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/repository/memory"
	pgrepo "github.com/jsamuelsen11/company-adhesion-service/internal/adapters/repository/postgres"
	"github.com/jsamuelsen11/company-adhesion-service/internal/app"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/config"
	pgdb "github.com/jsamuelsen11/company-adhesion-service/internal/platform/db/postgres"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/health"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/logging"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/storeguard"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)

	do.ProvideValue[ports.Clock](injector, clock.System{})

	registerStorage(ctx, injector, cfg, logger)
	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	if cfg.Storage.Driver == config.StoragePostgres {
		pool := do.MustInvoke[*pgxpool.Pool](injector)
		defer pool.Close()
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range do.MustInvokeNamed[[]ports.HealthChecker](injector, storageCheckers) {
		registry.Register(checker)
	}

	if cfg.Storage.Seed {
		if err := seed(ctx, injector); err != nil {
			return err
		}
		logger.Info("seeded demo data", slog.String("driver", cfg.Storage.Driver))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

const storageCheckers = "storage.checkers"

// registerStorage provides the company and transfer repositories for the
// configured driver, plus the health checkers that cover them.
func registerStorage(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		do.Provide(injector, func(_ do.Injector) (*pgxpool.Pool, error) {
			pool, err := pgdb.NewPool(ctx, cfg.Database)
			if err != nil {
				return nil, fmt.Errorf("connecting to postgres: %w", err)
			}
			return pool, nil
		})

		do.Provide(injector, func(i do.Injector) (*storeguard.Guard, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return storeguard.New("postgres", cfg.Storage.Breaker, metrics, logger), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.CompanyRepository, error) {
			pool, err := do.Invoke[*pgxpool.Pool](i)
			if err != nil {
				return nil, err
			}
			return pgrepo.NewCompanyRepository(pool, do.MustInvoke[*storeguard.Guard](i)), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.TransferRepository, error) {
			pool, err := do.Invoke[*pgxpool.Pool](i)
			if err != nil {
				return nil, err
			}
			return pgrepo.NewTransferRepository(pool, do.MustInvoke[*storeguard.Guard](i)), nil
		})

		do.ProvideNamed(injector, storageCheckers, func(i do.Injector) ([]ports.HealthChecker, error) {
			pool := do.MustInvoke[*pgxpool.Pool](i)
			guard := do.MustInvoke[*storeguard.Guard](i)
			return []ports.HealthChecker{pgdb.NewHealthChecker(pool), guard}, nil
		})

	default:
		do.Provide(injector, func(_ do.Injector) (ports.CompanyRepository, error) {
			return memory.NewCompanyRepository(), nil
		})
		do.Provide(injector, func(_ do.Injector) (ports.TransferRepository, error) {
			return memory.NewTransferRepository(), nil
		})
		do.ProvideNamedValue(injector, storageCheckers, []ports.HealthChecker{})
	}
}

func seed(ctx context.Context, injector do.Injector) error {
	companies := do.MustInvoke[ports.CompanyRepository](injector)
	transfers := do.MustInvoke[ports.TransferRepository](injector)
	now := do.MustInvoke[ports.Clock](injector).Now()

	if err := memory.Seed(ctx, companies, transfers, now); err != nil {
		return fmt.Errorf("seeding storage: %w", err)
	}
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.CompanyService, error) {
		companies, err := do.Invoke[ports.CompanyRepository](i)
		if err != nil {
			return nil, err
		}
		transfers, err := do.Invoke[ports.TransferRepository](i)
		if err != nil {
			return nil, err
		}
		clk := do.MustInvoke[ports.Clock](i)
		return app.NewCompanyService(companies, transfers, clk, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*authadapter.TokenManager, error) {
		return authadapter.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		tokens := do.MustInvoke[*authadapter.TokenManager](i)
		users := authadapter.NewStaticCredentialStore(cfg.Auth.Users)
		clk := do.MustInvoke[ports.Clock](i)
		return app.NewAuthService(users, authadapter.BcryptHasher{}, tokens, clk, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		companies, err := do.Invoke[ports.CompanyService](i)
		if err != nil {
			return adapthttp.Handlers{}, err
		}
		return adapthttp.Handlers{
			Company: handlers.NewCompanyHandler(companies),
			Auth:    handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i), do.MustInvoke[ports.Clock](i)),
			Docs:    handlers.NewDocsHandler(api.OpenAPI),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h, err := do.Invoke[adapthttp.Handlers](i)
		if err != nil {
			return nil, err
		}
		tokens := do.MustInvoke[*authadapter.TokenManager](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		limiter := middleware.NewLimiter(cfg.Auth.LoginRateLimit.RequestsPerSecond, cfg.Auth.LoginRateLimit.Burst)

		return adapthttp.NewRouter(h, tokens, limiter,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger, middleware.WithQuietPaths("/health/")),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
