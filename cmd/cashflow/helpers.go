package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/cashflow-journal/internal/backup"
	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/config"
	"github.com/Veraticus/cashflow-journal/internal/journal"
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
	"github.com/Veraticus/cashflow-journal/internal/service"
	"github.com/Veraticus/cashflow-journal/internal/storage"
)

// storageConfig reads the backend selection and paths from viper.
func storageConfig() (storage.Config, error) {
	backend, err := storage.ParseBackend(viper.GetString("storage.backend"))
	if err != nil {
		return storage.Config{}, err
	}
	return storage.Config{
		Backend:  backend,
		DBPath:   config.PathOr(viper.GetString("database.path"), config.DefaultDBPath),
		FilePath: config.PathOr(viper.GetString("storage.file_path"), config.DefaultFilePath),
	}, nil
}

// initStore opens the configured snapshot store, migrating SQLite as needed.
func initStore(ctx context.Context) (service.SnapshotStore, error) {
	cfg, err := storageConfig()
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, cfg)
}

// initJournal opens the store and loads the journal. The returned cleanup
// closes the store.
func initJournal(ctx context.Context) (*journal.Journal, func(), error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	j := journal.Open(ctx, store, journal.WithDefaultDarkMode(viper.GetBool("display.dark_mode")))
	cleanup := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}
	return j, cleanup, nil
}

// initArchive opens the backups directory.
func initArchive() (*backup.Archive, error) {
	return backup.NewArchive(config.PathOr(viper.GetString("backup.dir"), config.DefaultBackups))
}

// autoBackup keeps a safety copy of snap before a destructive operation,
// unless backup.auto is off. Failing to back up stops the operation.
func autoBackup(cmd *cobra.Command, snap *model.Snapshot, op string) error {
	if !viper.GetBool("backup.auto") {
		return nil
	}

	archive, err := initArchive()
	if err != nil {
		return err
	}
	meta, err := archive.AutoBackup(snap, op)
	if err != nil {
		return err
	}
	if meta != nil {
		printf(cmd, "%s\n", cli.FormatInfo(fmt.Sprintf("Saved a safety backup as %q (see 'cashflow backups list').", meta.ID)))
	}
	return nil
}

// checkSaved turns a failed save into a command error. The change only
// lives in this process's memory, so it is lost on exit.
func checkSaved(j *journal.Journal) error {
	if err := j.PersistErr(); err != nil {
		return common.NewUserError("the change could not be saved", err)
	}
	return nil
}

// periodFromFlag reads --period, falling back to display.period.
func periodFromFlag(cmd *cobra.Command) (period.Period, error) {
	name, _ := cmd.Flags().GetString("period")
	if name == "" {
		name = viper.GetString("display.period")
	}
	return period.Parse(name)
}

func addPeriodFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("period", "p", "", "time period: week, month, quarter, year, lifetime (default from display.period)")
}

// confirm asks on the command's streams unless force is set.
func confirm(cmd *cobra.Command, question string, force bool) error {
	return cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Require(cmd.Context(), question, force)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func printLine(cmd *cobra.Command, s string) {
	printf(cmd, "%s\n", s)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
