package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
)

func expense(id, categoryID, amount string, at time.Time) model.Transaction {
	return model.Transaction{ID: id, CategoryID: categoryID, Type: model.TypeExpense, Amount: decimal.RequireFromString(amount), Date: at}
}

func income(id, categoryID, amount string, at time.Time) model.Transaction {
	return model.Transaction{ID: id, CategoryID: categoryID, Type: model.TypeIncome, Amount: decimal.RequireFromString(amount), Date: at}
}

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 12, 0, 0, 0, time.Local)
}

var testCategories = []model.Category{
	{ID: "A", Name: "Rent", Type: model.TypeExpense},
	{ID: "B", Name: "Groceries", Type: model.TypeExpense},
	{ID: "C", Name: "Fuel", Type: model.TypeExpense},
	{ID: "D", Name: "Phone", Type: model.TypeExpense},
	{ID: "E", Name: "Gym", Type: model.TypeExpense},
}

func TestComputeScenario(t *testing.T) {
	txns := []model.Transaction{
		expense("1", "A", "300", day(3, 1)),
		expense("2", "B", "100", day(3, 2)),
	}

	totals := Compute(txns)
	assert.True(t, decimal.NewFromInt(-400).Equal(totals.Net))
	assert.True(t, totals.Income.IsZero())
	assert.True(t, decimal.NewFromInt(400).Equal(totals.Expense))

	top := TopSpending(txns, testCategories, DefaultTopN)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Category.ID)
	assert.Equal(t, 75, top[0].Percent)
	assert.Equal(t, "B", top[1].Category.ID)
	assert.Equal(t, 25, top[1].Percent)
}

func TestNetIsIncomeMinusExpense(t *testing.T) {
	sets := [][]model.Transaction{
		nil,
		{income("1", "S", "2500", day(3, 1))},
		{income("1", "S", "0.10", day(3, 1)), expense("2", "A", "0.20", day(3, 1)), expense("3", "B", "99.99", day(3, 2))},
	}

	for _, set := range sets {
		totals := Compute(set)
		assert.True(t, totals.Income.Sub(totals.Expense).Equal(totals.Net))
	}
}

func TestTopSpendingLimitAndTies(t *testing.T) {
	txns := []model.Transaction{
		expense("1", "C", "50", day(3, 1)),
		expense("2", "A", "200", day(3, 1)),
		expense("3", "D", "50", day(3, 2)),
		expense("4", "B", "75", day(3, 2)),
		expense("5", "E", "10", day(3, 3)),
		income("6", "S", "1000", day(3, 3)),
	}

	top := TopSpending(txns, testCategories, DefaultTopN)
	require.Len(t, top, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, categoryIDs(top), "C was seen before D")
}

func TestTopSpendingDropsMissingCategories(t *testing.T) {
	txns := []model.Transaction{
		expense("1", "A", "50", day(3, 1)),
		expense("2", "gone", "50", day(3, 1)),
	}

	rows := SpendingByCategory(txns, testCategories)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Category.ID)
	assert.Equal(t, 50, rows[0].Percent, "orphaned spending still counts toward the total")
}

func TestTopSpendingNoExpenses(t *testing.T) {
	assert.Empty(t, TopSpending(nil, testCategories, DefaultTopN))

	zero := []model.Transaction{expense("1", "A", "0", day(3, 1))}
	rows := SpendingByCategory(zero, testCategories)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Percent)
}

func TestPercentagesSumToHundred(t *testing.T) {
	sets := [][]model.Transaction{
		{expense("1", "A", "1", day(3, 1)), expense("2", "B", "1", day(3, 1)), expense("3", "C", "1", day(3, 1))},
		{expense("1", "A", "33.33", day(3, 1)), expense("2", "B", "66.67", day(3, 1))},
		{
			expense("1", "A", "10", day(3, 1)), expense("2", "B", "20", day(3, 1)), expense("3", "C", "30", day(3, 1)),
			expense("4", "D", "15.5", day(3, 1)), expense("5", "E", "4.5", day(3, 1)),
		},
	}

	for _, set := range sets {
		rows := SpendingByCategory(set, testCategories)
		sum := 0
		for _, r := range rows {
			sum += r.Percent
		}
		assert.InDelta(t, 100, sum, float64(len(rows)), "rows %+v", rows)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	txns := []model.Transaction{
		expense("old", "A", "1", day(1, 1)),
		expense("new", "A", "1", day(3, 1)),
		expense("mid", "A", "1", day(2, 1)),
	}

	got := History(txns)
	assert.Equal(t, []string{"new", "mid", "old"}, txIDs(got))
	assert.Equal(t, "old", txns[0].ID, "input is not reordered")
}

func TestRecurringTotal(t *testing.T) {
	total := RecurringTotal(model.SampleRecurringExpenses())
	assert.Equal(t, "1330.99", total.StringFixed(2))
}

func TestBuild(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.Local)
	snap := model.SampleSnapshot(now, false)
	snap.Transactions = append(snap.Transactions, expense("feb", "cat-exp-2", "40", day(2, 10)))

	s := Build(snap, period.Month, now)

	assert.Equal(t, period.Month, s.Period)
	assert.Len(t, s.History, 6)
	assert.Equal(t, "t6", s.History[0].ID)
	assert.Equal(t, "2500.00", s.Totals.Income.StringFixed(2))
	assert.Equal(t, "1610.75", s.Totals.Expense.StringFixed(2))
	assert.Equal(t, "889.25", s.Totals.Net.StringFixed(2))
	require.Len(t, s.TopSpending, 4)
	assert.Equal(t, "Rent", s.TopSpending[0].Category.Name)
	assert.Equal(t, 74, s.TopSpending[0].Percent)
	assert.Len(t, s.Series, SeriesMonths)
	assert.Equal(t, "849.25", s.Series[5].Value.StringFixed(2), "series uses every transaction")
}

func categoryIDs(rows []CategorySpending) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Category.ID)
	}
	return out
}

func txIDs(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}
