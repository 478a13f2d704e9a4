package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/backup"
	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

func backupCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the whole journal to a file",
		Long: `Write every transaction, category, recurring expense, and the theme
setting to a single file that 'cashflow restore' can read back.

Without --output the file is named cashflow-journal-backup-YYYY-MM-DD.json
in the current directory. Use --output - to write to standard output.`,
		Example: `  cashflow backup
  cashflow backup --format yaml --output ~/journal.yaml
  cashflow backup -o - | gzip > journal.json.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := backup.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && output != "" && output != "-" {
				f = backup.FormatFromPath(output)
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			snap := j.Snapshot()
			if output == "-" {
				return backup.Export(out(cmd), snap, f)
			}
			if output == "" {
				output = backup.FileName(j.Now(), f)
			}

			file, err := os.Create(output) //nolint:gosec // user-chosen output path
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			if err := backup.Export(file, snap, f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to write backup file: %w", err)
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Backed up %d transactions to %s", len(snap.Transactions), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default cashflow-journal-backup-<date>.json)")
	cmd.Flags().StringVar(&format, "format", "json", "file format: json or yaml")

	return cmd
}

func restoreCmd() *cobra.Command {
	var (
		archiveID string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "restore [file]",
		Short: "Replace the journal with a backup",
		Long: `Replace everything in the journal with the contents of a backup file or
an archived backup. The file must contain "transactions" and
"incomeCategories"; anything else missing falls back to defaults.

Unless backup.auto is off, the current journal is archived first so the
restore can be undone with 'cashflow restore --archive <id>'.`,
		Example: `  cashflow restore cashflow-journal-backup-2024-03-15.json
  cashflow restore --archive auto-clear-2024-03-15-103000`,
		Args: func(cmd *cobra.Command, args []string) error {
			if archiveID == "" && len(args) != 1 {
				return fmt.Errorf("pass a backup file or --archive <id>")
			}
			if archiveID != "" && len(args) != 0 {
				return fmt.Errorf("pass either a backup file or --archive, not both")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				restored *model.Snapshot
				source   string
				err      error
			)
			if archiveID != "" {
				restored, err = loadArchived(archiveID)
				source = "archived backup " + archiveID
			} else {
				restored, err = loadBackupFile(args[0])
				source = args[0]
			}
			if err != nil {
				return err
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			current := j.Snapshot()
			printLine(cmd, cli.FormatWarning(fmt.Sprintf(
				"This replaces %d transactions and %d recurring expenses with %d transactions and %d recurring expenses from %s.",
				len(current.Transactions), len(current.RecurringExpenses),
				len(restored.Transactions), len(restored.RecurringExpenses), source)))
			if err := confirm(cmd, "Restore?", force); err != nil {
				return err
			}

			if err := autoBackup(cmd, current, "restore"); err != nil {
				return err
			}

			j.Restore(cmd.Context(), restored)
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess("Journal restored from "+source))
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveID, "archive", "", "restore an archived backup by ID instead of a file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func loadBackupFile(path string) (*model.Snapshot, error) {
	file, err := os.Open(path) //nolint:gosec // user-chosen backup path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.Validationf("backup file %q does not exist", path)
		}
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return backup.Parse(file, backup.FormatFromPath(path))
}

func loadArchived(id string) (*model.Snapshot, error) {
	archive, err := initArchive()
	if err != nil {
		return nil, err
	}
	snap, err := archive.Load(id)
	if errors.Is(err, backup.ErrBackupNotFound) {
		return nil, common.Validationf("no archived backup %q (see 'cashflow backups list')", id)
	}
	return snap, err
}

func backupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "Manage archived backups",
		Long: `Create, list, and delete backups kept in the backups directory
(backup.dir). Automatic safety backups taken before restore, clear, and
sample are listed here too; only the newest few are kept.`,
		Example: `  # Keep a named copy before a big cleanup
  cashflow backups create --tag before-cleanup

  # Undo the last restore
  cashflow backups list
  cashflow restore --archive auto-restore-2024-03-15-103000`,
	}

	cmd.AddCommand(createBackupCmd())
	cmd.AddCommand(listBackupsCmd())
	cmd.AddCommand(deleteBackupCmd())

	return cmd
}

func createBackupCmd() *cobra.Command {
	var (
		tag         string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Archive the current journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			archive, err := initArchive()
			if err != nil {
				return err
			}

			meta, err := archive.Create(j.Snapshot(), tag, description)
			if err != nil {
				if errors.Is(err, backup.ErrBackupExists) || errors.Is(err, backup.ErrInvalidID) {
					return common.NewUserError(err.Error(), err)
				}
				return err
			}

			printf(cmd, "%s Created backup %s (%s)\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				cli.InfoStyle.Render(meta.ID),
				formatFileSize(meta.FileSize))
			if meta.Description != "" {
				printf(cmd, "  Description: %s\n", meta.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "backup name (generated from the time if not provided)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what this backup is for")

	return cmd
}

func listBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			archive, err := initArchive()
			if err != nil {
				return err
			}

			backups, err := archive.List()
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				printLine(cmd, cli.SubtitleStyle.Render("No backups found."))
				return nil
			}

			w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join([]string{
				cli.TableHeaderStyle.Render("NAME"),
				cli.TableHeaderStyle.Render("CREATED"),
				cli.TableHeaderStyle.Render("SIZE"),
				cli.TableHeaderStyle.Render("TRANSACTIONS"),
				cli.TableHeaderStyle.Render("RECURRING"),
				cli.TableHeaderStyle.Render("TYPE"),
			}, "\t"))

			now := time.Now()
			for _, b := range backups {
				typeLabel := "manual"
				if b.IsAuto {
					typeLabel = "auto"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
					cli.InfoStyle.Render(b.ID),
					formatRelativeTime(b.CreatedAt, now),
					formatFileSize(b.FileSize),
					b.Transactions,
					b.Recurring,
					cli.SubtitleStyle.Render(typeLabel))
			}
			return w.Flush()
		},
	}
}

func deleteBackupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an archived backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			archive, err := initArchive()
			if err != nil {
				return err
			}

			if err := confirm(cmd, fmt.Sprintf("Permanently delete backup %s?", id), force); err != nil {
				return err
			}

			if err := archive.Delete(id); err != nil {
				if errors.Is(err, backup.ErrBackupNotFound) || errors.Is(err, backup.ErrInvalidID) {
					return common.NewUserError(err.Error(), err)
				}
				return err
			}

			printf(cmd, "%s Deleted backup %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				cli.InfoStyle.Render(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

func formatRelativeTime(t, now time.Time) string {
	duration := now.Sub(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		if minutes := int(duration.Minutes()); minutes != 1 {
			return fmt.Sprintf("%d minutes ago", minutes)
		}
		return "1 minute ago"
	case duration < 24*time.Hour:
		if hours := int(duration.Hours()); hours != 1 {
			return fmt.Sprintf("%d hours ago", hours)
		}
		return "1 hour ago"
	case duration < 7*24*time.Hour:
		if days := int(duration.Hours() / 24); days != 1 {
			return fmt.Sprintf("%d days ago", days)
		}
		return "yesterday"
	default:
		return t.Format("2006-01-02 15:04")
	}
}
