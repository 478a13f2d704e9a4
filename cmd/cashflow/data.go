package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
)

func sampleCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Replace the journal with sample data",
		Long: `Load a small set of example transactions and recurring expenses dated
around today. Everything currently in the journal is replaced; the theme
setting is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			current := j.Snapshot()
			if len(current.Transactions) > 0 || len(current.RecurringExpenses) > 0 {
				printLine(cmd, cli.FormatWarning(fmt.Sprintf(
					"This replaces %d transactions and %d recurring expenses with sample data.",
					len(current.Transactions), len(current.RecurringExpenses))))
				if err := confirm(cmd, "Load sample data?", force); err != nil {
					return err
				}
			}

			if err := autoBackup(cmd, current, "sample"); err != nil {
				return err
			}

			j.LoadSampleData(cmd.Context())
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Loaded %d sample transactions", len(j.Snapshot().Transactions))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete everything and start over",
		Long: `Remove every transaction and recurring expense and reset the categories
to the defaults. This is a destructive operation; unless backup.auto is off
a safety backup is archived first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			current := j.Snapshot()
			printLine(cmd, cli.FormatWarning(fmt.Sprintf(
				"This will delete %d transactions and %d recurring expenses and reset all categories.",
				len(current.Transactions), len(current.RecurringExpenses))))
			if err := confirm(cmd, "Are you sure you want to continue?", force); err != nil {
				return err
			}

			if err := autoBackup(cmd, current, "clear"); err != nil {
				return err
			}

			j.ClearAll(cmd.Context())
			if err := j.PersistErr(); err != nil {
				return common.NewUserError("the stored journal could not be removed", err)
			}

			printLine(cmd, cli.FormatSuccess("All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the dashboard theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				printLine(cmd, "Theme: "+themeName(j.Snapshot().DarkMode))
				return nil
			}

			var dark bool
			switch strings.ToLower(args[0]) {
			case "dark":
				dark = true
			case "light":
			default:
				return common.Validationf("unknown theme %q (want dark or light)", args[0])
			}

			j.SetDarkMode(cmd.Context(), dark)
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess("Theme set to "+themeName(dark)))
			return nil
		},
	}
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
