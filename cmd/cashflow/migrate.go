package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the SQLite database schema to the latest version.

The journal applies migrations on its own when it opens the database; this
command is for checking the schema or preparing a database ahead of time.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")

	cfg, err := storageConfig()
	if err != nil {
		return err
	}
	if cfg.Backend != storage.BackendSQLite {
		return fmt.Errorf("migrations only apply to the sqlite backend (configured: %s)", cfg.Backend)
	}

	slog.Info("Starting database migration", "database", cfg.DBPath, "status_only", status)

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if status {
		version, dirty, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		printLine(cmd, cli.FormatTitle("Database Migration Status"))
		printf(cmd, "Database:        %s\n", cfg.DBPath)
		printf(cmd, "Current version: %d\n", version)
		printf(cmd, "Latest version:  %d\n", storage.ExpectedSchemaVersion)
		switch {
		case dirty:
			printLine(cmd, cli.FormatError("Schema is dirty: a migration failed part-way."))
		case version < storage.ExpectedSchemaVersion:
			printLine(cmd, cli.FormatWarning("Migrations pending, run 'cashflow migrate'."))
		default:
			printLine(cmd, cli.FormatSuccess("Schema is up to date."))
		}
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Database migrations completed (version %d)", storage.ExpectedSchemaVersion)))
	return nil
}
