package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/ofx"
)

const (
	defaultImportIncomeCategory  = "cat-inc-1"
	defaultImportExpenseCategory = "cat-exp-11"
	previewLimit                 = 5
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.

Credits become income filed under --income-category, debits become expenses
filed under --expense-category. Re-importing the same statement is safe:
transactions already in the journal are skipped.`,
		Example: `  # Import single file
  cashflow import-ofx ~/Downloads/checking_jan_2024.qfx

  # Import every statement in a directory, filing debits under Groceries
  cashflow import-ofx --expense-category cat-exp-2 ~/Downloads/*.qfx

  # Preview without saving
  cashflow import-ofx --dry-run ~/Downloads/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "n", false, "Preview import without saving")
	cmd.Flags().BoolP("verbose", "v", false, "Show every parsed transaction")
	cmd.Flags().String("income-category", defaultImportIncomeCategory, "category ID for credits")
	cmd.Flags().String("expense-category", defaultImportExpenseCategory, "category ID for debits")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	incomeCat, _ := cmd.Flags().GetString("income-category")
	expenseCat, _ := cmd.Flags().GetString("expense-category")

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	j, cleanup, err := initJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cli.NewInterruptHandler(cmd.ErrOrStderr()).HandleInterrupts(cmd.Context(), "Import")

	parser := ofx.NewParser(incomeCat, expenseCat)
	bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(files), "Reading statements")

	var parsed []model.Transaction
	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		txns, err := parseOFXFile(ctx, parser, path)
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": path})
			failed++
		} else {
			slog.Info("Parsed file", "file", filepath.Base(path), "transactions", len(txns))
			parsed = append(parsed, txns...)
		}
		_ = bar.Add(1)
	}

	if len(parsed) == 0 {
		printLine(cmd, cli.FormatWarning(fmt.Sprintf("No transactions found in %d file(s).", len(files))))
		return nil
	}

	printImportPreview(cmd, j.Snapshot(), parsed, verbose)

	if dryRun {
		printLine(cmd, cli.FormatInfo("Dry run complete, nothing saved."))
		return nil
	}

	result, err := j.ImportTransactions(ctx, parsed)
	if err != nil {
		return err
	}
	if err := checkSaved(j); err != nil {
		return err
	}

	printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d already in the journal)", result.Added, result.Duplicate)))
	if failed > 0 {
		printLine(cmd, cli.FormatWarning(fmt.Sprintf("%d file(s) could not be read, see the log for details.", failed)))
	}
	return nil
}

// expandFiles resolves glob patterns, keeping literal paths that exist.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				slog.Warn("No files found matching pattern", "pattern", pattern)
				continue
			}
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to import")
	}
	return files, nil
}

func parseOFXFile(ctx context.Context, parser *ofx.Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path) //nolint:gosec // user-chosen statement file
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return parser.ParseFile(ctx, f)
}

func printImportPreview(cmd *cobra.Command, snap *model.Snapshot, txns []model.Transaction, verbose bool) {
	sorted := append([]model.Transaction(nil), txns...)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Date.Before(sorted[b].Date) })

	income, expense := decimal.Zero, decimal.Zero
	for _, t := range sorted {
		if t.Type == model.TypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	first, last := sorted[0].Date.Local(), sorted[len(sorted)-1].Date.Local()
	printf(cmd, "\n📅 %s to %s: %d transactions\n", first.Format("2006-01-02"), last.Format("2006-01-02"), len(sorted))
	printf(cmd, "💰 In %s, out %s\n\n",
		cli.IncomeStyle.Render(model.FormatUSD(income)),
		cli.ExpenseStyle.Render(model.FormatUSD(expense)))

	limit := previewLimit
	if verbose {
		limit = len(sorted)
	}
	for i, t := range sorted {
		if i >= limit {
			printf(cmd, "  ... and %d more (use --verbose to see all)\n", len(sorted)-limit)
			break
		}
		printf(cmd, "  %s  %-14s %12s  %s\n",
			t.Date.Local().Format("2006-01-02"),
			snap.CategoryName(t.CategoryID),
			cli.FormatSigned(t.Amount, t.Type),
			t.Description)
	}
	printLine(cmd, "")
}
