package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Long: `Browse the journal in a full-screen dashboard: net cash flow for the
selected period, top spending categories, the six-month cash-flow chart,
recurring expenses, and the transaction history.

Keys: ←/→ change period, d toggles dark mode, / searches the history,
? shows help, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := periodFromFlag(cmd)
			if err != nil {
				return err
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(cmd.Context(),
				tui.WithJournal(j),
				tui.WithPeriod(p),
			)
		},
	}

	addPeriodFlag(cmd)
	return cmd
}
