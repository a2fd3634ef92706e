package main

import (
	"context"
	"os"

	"github.com/qlf-seminar/backend/internal/config"
	"github.com/qlf-seminar/backend/internal/logging"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	// withPool connects using DATABASE_URL and runs fn against the pool.
	withPool := func(fn func(ctx context.Context, m *migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)

			ctx := cmd.Context()
			pool, err := repository.NewPool(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout)
			if err != nil {
				return err
			}
			defer pool.Close()

			if dir == "" {
				dir = findMigrationDir()
			}
			return fn(ctx, &migrator{db: pool, dir: dir})
		}
	}

	up := func(ctx context.Context, m *migrator) error {
		_, err := m.Incremental(ctx)
		return err
	}

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply the seminar database migrations",
		Long:         "Without a subcommand, applies every migrations/*.up.sql not yet recorded in schema_migrations.",
		SilenceUsage: true,
		RunE:         withPool(up),
	}
	root.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (default: ./migrations or ../migrations)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE:  withPool(up),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Drop all tables and recreate them from the consolidated schema",
			Args:  cobra.NoArgs,
			RunE: withPool(func(ctx context.Context, m *migrator) error {
				if err := m.DropAll(ctx); err != nil {
					return err
				}
				return m.Consolidated(ctx)
			}),
		},
		&cobra.Command{
			Use:   "fresh",
			Short: "Drop all tables and apply every migration in order",
			Args:  cobra.NoArgs,
			RunE: withPool(func(ctx context.Context, m *migrator) error {
				if err := m.DropAll(ctx); err != nil {
					return err
				}
				_, err := m.Incremental(ctx)
				return err
			}),
		},
	)
	return root
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}
