package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/common"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "150", want: "150"},
		{name: "cents", input: "150.25", want: "150.25"},
		{name: "dollar sign and separators", input: "$1,200.50", want: "1200.5"},
		{name: "trailing zero beyond cents", input: "1.500", want: "1.5"},
		{name: "zero", input: "0", want: "0"},
		{name: "empty", input: "  ", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "garbage", input: "twelve", wantErr: true},
		{name: "too precise", input: "1.234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "$0.00"},
		{in: "85.5", want: "$85.50"},
		{in: "1200", want: "$1,200.00"},
		{in: "1234567.891", want: "$1,234,567.89"},
		{in: "-400", want: "-$400.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	got, err := ParseTransactionType(" Expense ")
	require.NoError(t, err)
	assert.Equal(t, TypeExpense, got)

	got, err = ParseTransactionType("income")
	require.NoError(t, err)
	assert.Equal(t, TypeIncome, got)

	_, err = ParseTransactionType("transfer")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCategoryValidate(t *testing.T) {
	assert.NoError(t, Category{ID: "cat-1", Name: "Rent", Type: TypeExpense}.Validate())
	assert.ErrorIs(t, Category{ID: "cat-1", Name: "   ", Type: TypeExpense}.Validate(), common.ErrValidation)
	assert.ErrorIs(t, Category{Name: "Rent", Type: TypeExpense}.Validate(), common.ErrValidation)
	assert.ErrorIs(t, Category{ID: "cat-1", Name: "Rent", Type: "system"}.Validate(), common.ErrValidation)

	name, err := ValidateCategoryName("  Coffee  ")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", name)
}

func TestRecurringExpenseValidate(t *testing.T) {
	valid := RecurringExpense{CategoryID: "cat-exp-2", Amount: decimal.NewFromInt(50), DayOfMonth: 31}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		mutate func(*RecurringExpense)
		name   string
	}{
		{name: "day 32", mutate: func(r *RecurringExpense) { r.DayOfMonth = 32 }},
		{name: "day 0", mutate: func(r *RecurringExpense) { r.DayOfMonth = 0 }},
		{name: "zero amount", mutate: func(r *RecurringExpense) { r.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(r *RecurringExpense) { r.Amount = decimal.NewFromInt(-1) }},
		{name: "no category", mutate: func(r *RecurringExpense) { r.CategoryID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), common.ErrValidation)
		})
	}
}

func TestTransactionSigned(t *testing.T) {
	income := Transaction{Type: TypeIncome, Amount: decimal.NewFromInt(10)}
	expense := Transaction{Type: TypeExpense, Amount: decimal.NewFromInt(10)}

	assert.Equal(t, "10", income.Signed().String())
	assert.Equal(t, "-10", expense.Signed().String())
}

func TestSnapshotJSONShape(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Transactions: []Transaction{{
			ID: "t3", CategoryID: "cat-exp-2", Type: TypeExpense,
			Amount: decimal.RequireFromString("150.25"), Description: "Supermarket run", Date: date,
		}},
		IncomeCategories:  DefaultIncomeCategories(),
		ExpenseCategories: []Category{},
		RecurringExpenses: []RecurringExpense{},
		DarkMode:          true,
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.ElementsMatch(t,
		[]string{"transactions", "incomeCategories", "expenseCategories", "recurringExpenses", "darkMode"},
		keys(raw))

	tx := raw["transactions"].([]any)[0].(map[string]any)
	assert.InDelta(t, 150.25, tx["amount"], 0.0001)
	assert.Equal(t, "cat-exp-2", tx["categoryId"])
	assert.Equal(t, "expense", tx["type"])
	assert.Equal(t, "2024-03-01T10:00:00Z", tx["date"])
}

func TestSnapshotDecodesBrowserDates(t *testing.T) {
	input := `{"transactions":[{"id":"t1","categoryId":"cat-inc-1","type":"income","amount":2500,"description":"","date":"2024-03-01T10:15:00.000Z"}],"incomeCategories":[]}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(input), &snap))
	require.Len(t, snap.Transactions, 1)
	assert.True(t, decimal.NewFromInt(2500).Equal(snap.Transactions[0].Amount))
	assert.Equal(t, 15, snap.Transactions[0].Date.Minute())
}

func TestSnapshotNormalize(t *testing.T) {
	snap := &Snapshot{IncomeCategories: []Category{}}
	snap.Normalize()

	assert.NotNil(t, snap.Transactions)
	assert.NotNil(t, snap.RecurringExpenses)
	assert.Empty(t, snap.IncomeCategories, "explicit empty list is kept")
	assert.Equal(t, DefaultExpenseCategories(), snap.ExpenseCategories)
}

func TestSnapshotLookups(t *testing.T) {
	snap := SampleSnapshot(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), false)

	c, ok := snap.FindCategory("cat-exp-6")
	require.True(t, ok)
	assert.Equal(t, "Streaming Service", c.Name)

	assert.Equal(t, "Salary", snap.CategoryName("cat-inc-1"))
	assert.Equal(t, UncategorizedName, snap.CategoryName("cat-gone"))
	assert.Equal(t, 2, snap.FindTransaction("t3"))
	assert.Equal(t, -1, snap.FindTransaction("nope"))
	assert.Len(t, snap.RecurringFor("cat-exp-1"), 1)
	assert.Empty(t, snap.RecurringFor("cat-exp-2"))
	assert.Len(t, snap.Categories(), 12)
}

func TestSnapshotClone(t *testing.T) {
	orig := DefaultSnapshot(false)
	clone := orig.Clone()
	clone.ExpenseCategories[0].Name = "Mortgage"
	clone.DarkMode = true

	assert.Equal(t, "Rent", orig.ExpenseCategories[0].Name)
	assert.False(t, orig.DarkMode)
	assert.NotNil(t, clone.Transactions, "empty stays empty, not nil")
	assert.Nil(t, (&Snapshot{}).Clone().Transactions)
}

func TestSeedData(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)
	snap := SampleSnapshot(now, true)

	assert.True(t, snap.DarkMode)
	assert.Len(t, snap.IncomeCategories, 1)
	assert.Len(t, snap.ExpenseCategories, 11)
	assert.Len(t, snap.Transactions, 6)
	assert.Len(t, snap.RecurringExpenses, 4)

	seen := map[string]bool{}
	for _, c := range snap.IncomeCategories {
		assert.Equal(t, TypeIncome, c.Type)
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
	for _, c := range snap.ExpenseCategories {
		assert.Equal(t, TypeExpense, c.Type)
		assert.False(t, seen[c.ID], "id %s overlaps", c.ID)
		seen[c.ID] = true
	}

	for _, tx := range snap.Transactions {
		assert.Equal(t, time.March, tx.Date.Month())
		assert.Equal(t, 9, tx.Date.Hour())
		c, ok := snap.FindCategory(tx.CategoryID)
		require.True(t, ok)
		assert.Equal(t, c.Type, tx.Type)
	}
	for _, r := range snap.RecurringExpenses {
		assert.NoError(t, r.Validate())
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
