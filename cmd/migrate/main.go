// Package main is a command-line tool that applies the embedded PostgreSQL
// schema migrations using the same configuration profiles as the server.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/config"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/logging"
	"github.com/jsamuelsen11/company-adhesion-service/migrations"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the company adhesion database migrations",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"configuration profile (defaults to $APP_PROFILE)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory containing base.yaml and profile files")

	root.AddCommand(
		newUpCmd(opts),
		newDownCmd(opts),
		newVersionCmd(opts),
		newForceCmd(opts),
	)
	return root
}

func newUpCmd(opts *options) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *migrate.Migrate, logger *slog.Logger) error {
				var err error
				if steps > 0 {
					err = m.Steps(steps)
				} else {
					err = m.Up()
				}
				return report(logger, m, "up", err)
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "apply at most n migrations (0 applies all)")
	return cmd
}

func newDownCmd(opts *options) *cobra.Command {
	var (
		steps int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !all && steps <= 0 {
				return errors.New("pass --steps n or --all")
			}
			return withMigrator(opts, func(m *migrate.Migrate, logger *slog.Logger) error {
				var err error
				if all {
					err = m.Down()
				} else {
					err = m.Steps(-steps)
				}
				return report(logger, m, "down", err)
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "roll back n migrations")
	cmd.Flags().BoolVar(&all, "all", false, "roll back every migration")
	return cmd
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *migrate.Migrate, _ *slog.Logger) error {
				v, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					cmd.Println("no migrations applied")
					return nil
				}
				if err != nil {
					return fmt.Errorf("reading version: %w", err)
				}
				cmd.Printf("version %d (dirty: %t)\n", v, dirty)
				return nil
			})
		},
	}
}

func newForceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Set the schema version without running migrations, clearing the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			return withMigrator(opts, func(m *migrate.Migrate, logger *slog.Logger) error {
				if err := m.Force(v); err != nil {
					return fmt.Errorf("forcing version %d: %w", v, err)
				}
				logger.Info("schema version forced", slog.Int("version", v))
				return nil
			})
		},
	}
}

// withMigrator loads config for the selected profile, opens a migrator over
// the embedded migrations and closes it after fn returns.
func withMigrator(opts *options, fn func(*migrate.Migrate, *slog.Logger) error) error {
	if opts.profile == "" {
		return errors.New("profile is required: pass --profile or set APP_PROFILE")
	}

	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if cfg.Storage.Driver != config.StoragePostgres {
		logger.Warn("storage driver is not postgres; migrating the configured database anyway",
			slog.String("driver", cfg.Storage.Driver),
		)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("opening embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL(cfg.Database))
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Warn("closing migrator", slog.Any("error", err))
		}
	}()

	return fn(m, logger)
}

// databaseURL rewrites the pgx DSN to the pgx/v5 migrate driver scheme.
func databaseURL(db config.DatabaseConfig) string {
	return "pgx5://" + strings.TrimPrefix(db.DSN(), "postgres://")
}

func report(logger *slog.Logger, m *migrate.Migrate, direction string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to apply", slog.String("direction", direction))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrating %s: %w", direction, err)
	}

	v, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("reading version: %w", verr)
	}
	logger.Info("migrations applied",
		slog.String("direction", direction),
		slog.Uint64("version", uint64(v)),
		slog.Bool("dirty", dirty),
	)
	return nil
}
