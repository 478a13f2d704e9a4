// Package report derives the numbers shown for a reporting period: totals,
// spending by category, the cumulative cash-flow series and the history.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
)

// DefaultTopN is how many categories the spending summary shows.
const DefaultTopN = 4

// Totals aggregates a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal // Income - Expense
}

// CategorySpending is one row of the spending rollup.
type CategorySpending struct {
	Category model.Category
	Amount   decimal.Decimal
	Percent  int // share of all expense spending in the set, rounded
}

// Summary is everything the period views render.
type Summary struct {
	Now            time.Time
	Period         period.Period
	Totals         Totals
	RecurringTotal decimal.Decimal
	TopSpending    []CategorySpending
	History        []model.Transaction
	Series         []MonthPoint
}

// Build computes the summary of snap for p as of now. The series always
// covers every transaction regardless of p.
func Build(snap *model.Snapshot, p period.Period, now time.Time) Summary {
	filtered := period.Select(snap.Transactions, p, now)

	return Summary{
		Now:            now,
		Period:         p,
		Totals:         Compute(filtered),
		RecurringTotal: RecurringTotal(snap.RecurringExpenses),
		TopSpending:    TopSpending(filtered, snap.ExpenseCategories, DefaultTopN),
		History:        History(filtered),
		Series:         CashFlowSeries(snap.Transactions, now),
	}
}

// Compute sums income and expense amounts.
func Compute(transactions []model.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// SpendingByCategory groups expense transactions by category, largest
// first. Groups whose category no longer exists are dropped but still count
// toward the total the percentages are taken from. Equal amounts keep the
// order in which their categories first appear.
func SpendingByCategory(transactions []model.Transaction, categories []model.Category) []CategorySpending {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	var order []string
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		if _, seen := sums[t.CategoryID]; !seen {
			order = append(order, t.CategoryID)
			sums[t.CategoryID] = decimal.Zero
		}
		sums[t.CategoryID] = sums[t.CategoryID].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	rows := make([]CategorySpending, 0, len(order))
	for _, id := range order {
		c, ok := byID[id]
		if !ok {
			continue
		}
		rows = append(rows, CategorySpending{
			Category: c,
			Amount:   sums[id],
			Percent:  percentOf(sums[id], total),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})
	return rows
}

// TopSpending returns at most n rows of SpendingByCategory.
func TopSpending(transactions []model.Transaction, categories []model.Category, n int) []CategorySpending {
	rows := SpendingByCategory(transactions, categories)
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func percentOf(part, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	return int(part.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// History returns the transactions newest first.
func History(transactions []model.Transaction) []model.Transaction {
	sorted := append([]model.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// RecurringTotal is the nominal monthly amount of all recurring expenses.
func RecurringTotal(recurring []model.RecurringExpense) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recurring {
		total = total.Add(r.Amount)
	}
	return total
}
