package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubos-banking-ledger/internal/platform/persistence"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL schema migrations",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return errors.New("POSTGRES_URL is required to run migrations")
	}

	version, err := persistence.ApplyMigrations(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
	if err != nil {
		return err
	}

	log.Info("Migrations applied", "path", cfg.Postgres.MigrationsPath, "version", version)
	fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d\n", version)
	return nil
}
