package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/report"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage monthly recurring expenses",
		Long: `Track bills that come back every month. Recurring expenses are reminders:
they are never turned into transactions automatically.`,
	}

	cmd.AddCommand(listRecurringCmd())
	cmd.AddCommand(saveRecurringCmd("add"))
	cmd.AddCommand(saveRecurringCmd("update"))
	cmd.AddCommand(deleteRecurringCmd())

	return cmd
}

func listRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			snap := j.Snapshot()
			if len(snap.RecurringExpenses) == 0 {
				printLine(cmd, cli.InfoStyle.Render("No recurring expenses. Use 'cashflow recurring add' to track one."))
				return nil
			}

			w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Day"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 3),
				strings.Repeat("-", 16),
				strings.Repeat("-", 10),
				strings.Repeat("-", 20))
			for _, r := range snap.RecurringExpenses {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
					r.ID, r.DayOfMonth, snap.CategoryName(r.CategoryID), model.FormatUSD(r.Amount), r.Description)
			}
			_ = w.Flush()

			printLine(cmd, "")
			printLine(cmd, fmt.Sprintf("Total per month: %s", cli.BoldStyle.Render(model.FormatUSD(report.RecurringTotal(snap.RecurringExpenses)))))
			return nil
		},
	}
}

// saveRecurringCmd builds "add" (no id, all fields required) and
// "update <id>" (unset flags keep their value).
func saveRecurringCmd(verb string) *cobra.Command {
	var (
		categoryID  string
		amount      string
		description string
		day         int
	)

	cmd := &cobra.Command{
		Use:   verb,
		Short: "Add a recurring expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var r model.RecurringExpense
			if verb == "update" {
				id := args[0]
				found := false
				for _, existing := range j.Snapshot().RecurringExpenses {
					if existing.ID == id {
						r, found = existing, true
						break
					}
				}
				if !found {
					return common.Validationf("no recurring expense with ID %q", id)
				}
			}

			if cmd.Flags().Changed("category") || verb == "add" {
				r.CategoryID = categoryID
			}
			if cmd.Flags().Changed("amount") || verb == "add" {
				if r.Amount, err = model.ParseAmount(amount); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("description") || verb == "add" {
				r.Description = description
			}
			if cmd.Flags().Changed("day") || verb == "add" {
				r.DayOfMonth = day
			}

			saved, err := j.SaveRecurringExpense(cmd.Context(), r)
			if err != nil {
				return err
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Saved recurring expense %s: %s on day %d",
				saved.ID, model.FormatUSD(saved.Amount), saved.DayOfMonth)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "expense category ID")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "monthly amount, greater than zero")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what the bill is for")
	cmd.Flags().IntVar(&day, "day", 1, "day of the month it is due (1-31)")

	if verb == "update" {
		cmd.Use = "update <id>"
		cmd.Short = "Change a recurring expense"
		cmd.Args = cobra.ExactArgs(1)
	} else {
		_ = cmd.MarkFlagRequired("category")
		_ = cmd.MarkFlagRequired("amount")
	}

	return cmd
}

func deleteRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Stop tracking a recurring expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if !j.DeleteRecurringExpense(cmd.Context(), args[0]) {
				printLine(cmd, cli.InfoStyle.Render(fmt.Sprintf("No recurring expense with ID %q, nothing to delete.", args[0])))
				return nil
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Deleted recurring expense %s", args[0])))
			return nil
		},
	}
}
