package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/report"
)

const barWidth = 24

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show net cash flow and top spending for a period",
		Long: `Show income, expenses and net cash flow for the selected period, the
categories you spent the most on, and the total of your recurring expenses.`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}
	addPeriodFlag(cmd)
	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
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

	totals := fmt.Sprintf("Net cash flow  %s\nIncome         %s\nExpenses       %s\nRecurring      %s / month",
		cli.FormatMoney(s.Totals.Net),
		cli.IncomeStyle.Render(model.FormatUSD(s.Totals.Income)),
		cli.ExpenseStyle.Render(model.FormatUSD(s.Totals.Expense)),
		model.FormatUSD(s.RecurringTotal))
	printLine(cmd, cli.RenderBox(fmt.Sprintf("%s %s", cli.ChartIcon, s.Period), totals))

	printLine(cmd, "")
	printLine(cmd, cli.TitleStyle.Render("Top spending"))
	if len(s.TopSpending) == 0 {
		printLine(cmd, cli.SubtleStyle.Render("No expenses in this period."))
		return nil
	}
	renderSpending(cmd, s.TopSpending)
	return nil
}

func renderSpending(cmd *cobra.Command, rows []report.CategorySpending) {
	w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%3d%%\t%s\n",
			row.Category.Name,
			model.FormatUSD(row.Amount),
			row.Percent,
			percentBar(row.Percent, barWidth))
	}
}

// percentBar draws a fixed-width bar filled to pct percent.
func percentBar(pct, width int) string {
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	return cli.ExpenseStyle.Render(strings.Repeat("█", filled)) +
		cli.SubtleStyle.Render(strings.Repeat("░", width-filled))
}

func chartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show the cumulative cash flow of the last six months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			series := report.CashFlowSeries(j.Snapshot().Transactions, j.Now())
			printLine(cmd, cli.TitleStyle.Render(cli.ChartIcon+" Cash flow"))
			printLine(cmd, renderSeries(series, barWidth))
			return nil
		},
	}
}

// renderSeries draws one horizontal bar per month, scaled to the largest
// absolute value.
func renderSeries(series []report.MonthPoint, width int) string {
	peak := decimal.Zero
	for _, pt := range series {
		peak = decimal.Max(peak, pt.Value.Abs())
	}

	var b strings.Builder
	for _, pt := range series {
		n := 0
		if peak.IsPositive() {
			n = int(pt.Value.Abs().Mul(decimal.NewFromInt(int64(width))).Div(peak).Round(0).IntPart())
		}
		style := cli.IncomeStyle
		if pt.Value.IsNegative() {
			style = cli.ExpenseStyle
		}
		bar := lipgloss.NewStyle().Width(width).Render(style.Render(strings.Repeat("█", n)))
		fmt.Fprintf(&b, "%s  %s  %s\n", pt.Month, bar, cli.FormatMoney(pt.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}
