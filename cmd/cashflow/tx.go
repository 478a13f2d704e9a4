package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/journal"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Record, edit and list transactions",
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(listTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType      string
		categoryID  string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction dated now",
		Example: `  cashflow tx add --type expense --category cat-exp-2 --amount 42.10 --description "Weekly shop"
  cashflow tx add --type income --category cat-inc-1 --amount 2500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := model.ParseTransactionType(txType)
			if err != nil {
				return err
			}
			amt, err := model.ParseAmount(amount)
			if err != nil {
				return err
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			tx, err := j.AddTransaction(cmd.Context(), journal.NewTransaction{
				Type:        t,
				CategoryID:  categoryID,
				Amount:      amt,
				Description: description,
			})
			if err != nil {
				return err
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Recorded %s %s in %s (ID: %s)",
				tx.Type, model.FormatUSD(tx.Amount), j.Snapshot().CategoryName(tx.CategoryID), tx.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category ID (see 'cashflow categories list')")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount, greater than zero")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what it was for")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func editTxCmd() *cobra.Command {
	var (
		categoryID  string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a transaction's category, amount or description",
		Long: `Change a transaction's category, amount or description. Flags that are
not given keep their current value. The type and date cannot be changed.

Setting the amount to 0 deletes the transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			current, ok := j.Transaction(id)
			if !ok {
				return common.Validationf("no transaction with ID %q", id)
			}

			newCategory := current.CategoryID
			if cmd.Flags().Changed("category") {
				newCategory = categoryID
			}
			newAmount := current.Amount
			if cmd.Flags().Changed("amount") {
				if newAmount, err = model.ParseAmount(amount); err != nil {
					return err
				}
			}
			newDescription := current.Description
			if cmd.Flags().Changed("description") {
				newDescription = description
			}

			deleted, err := j.EditTransaction(cmd.Context(), id, newCategory, newAmount, newDescription)
			if err != nil {
				return err
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			if deleted {
				printLine(cmd, cli.FormatWarning(fmt.Sprintf("Amount set to 0: transaction %s was deleted.", id)))
				return nil
			}
			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "new category ID")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount (0 deletes the transaction)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")

	return cmd
}

func listTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in a period, newest first",
		Args:  cobra.NoArgs,
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

			s := j.Summary(p)
			if len(s.History) == 0 {
				printLine(cmd, cli.InfoStyle.Render("No transactions yet. Use 'cashflow tx add' to record one."))
				return nil
			}

			renderHistory(cmd, j.Snapshot(), s.History, j.Now().Location())
			return nil
		},
	}
	addPeriodFlag(cmd)
	return cmd
}

// renderHistory prints history as a table, with dates in loc.
func renderHistory(cmd *cobra.Command, snap *model.Snapshot, history []model.Transaction, loc *time.Location) {
	w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Description"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 8),
		strings.Repeat("-", 16),
		strings.Repeat("-", 10),
		strings.Repeat("-", 20))

	for _, t := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Date.In(loc).Format("2006-01-02"),
			t.ID,
			snap.CategoryName(t.CategoryID),
			cli.FormatSigned(t.Amount, t.Type),
			t.Description)
	}
}
