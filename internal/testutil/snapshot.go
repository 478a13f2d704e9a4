package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// SnapshotBuilder provides a fluent interface for constructing test
// snapshots.
//
// Example:
//
//	snap := testutil.NewSnapshotBuilder(t).
//		WithDefaultCategories().
//		WithExpense("t1", "cat-exp-2", "42.50", day).
//		Build()
type SnapshotBuilder struct {
	t    *testing.T
	snap *model.Snapshot
}

// NewSnapshotBuilder starts from an empty snapshot.
func NewSnapshotBuilder(t *testing.T) *SnapshotBuilder {
	t.Helper()
	return &SnapshotBuilder{
		t: t,
		snap: &model.Snapshot{
			Transactions:      []model.Transaction{},
			IncomeCategories:  []model.Category{},
			ExpenseCategories: []model.Category{},
			RecurringExpenses: []model.RecurringExpense{},
		},
	}
}

// WithDefaultCategories adds the seed income and expense categories.
func (b *SnapshotBuilder) WithDefaultCategories() *SnapshotBuilder {
	b.snap.IncomeCategories = append(b.snap.IncomeCategories, model.DefaultIncomeCategories()...)
	b.snap.ExpenseCategories = append(b.snap.ExpenseCategories, model.DefaultExpenseCategories()...)
	return b
}

// WithCategory adds one category to the list matching its type.
func (b *SnapshotBuilder) WithCategory(id, name string, t model.TransactionType) *SnapshotBuilder {
	c := model.Category{ID: id, Name: name, Icon: "tag", Type: t}
	if t == model.TypeIncome {
		b.snap.IncomeCategories = append(b.snap.IncomeCategories, c)
	} else {
		b.snap.ExpenseCategories = append(b.snap.ExpenseCategories, c)
	}
	return b
}

// WithIncome adds an income transaction.
func (b *SnapshotBuilder) WithIncome(id, categoryID, amount string, at time.Time) *SnapshotBuilder {
	return b.withTransaction(id, categoryID, model.TypeIncome, amount, at)
}

// WithExpense adds an expense transaction.
func (b *SnapshotBuilder) WithExpense(id, categoryID, amount string, at time.Time) *SnapshotBuilder {
	return b.withTransaction(id, categoryID, model.TypeExpense, amount, at)
}

func (b *SnapshotBuilder) withTransaction(id, categoryID string, t model.TransactionType, amount string, at time.Time) *SnapshotBuilder {
	b.t.Helper()
	b.snap.Transactions = append(b.snap.Transactions, model.Transaction{
		ID:          id,
		CategoryID:  categoryID,
		Type:        t,
		Amount:      b.amount(amount),
		Description: string(t) + " " + id,
		Date:        at,
	})
	return b
}

// WithRecurring adds a recurring expense.
func (b *SnapshotBuilder) WithRecurring(id, categoryID, amount string, day int) *SnapshotBuilder {
	b.t.Helper()
	b.snap.RecurringExpenses = append(b.snap.RecurringExpenses, model.RecurringExpense{
		ID:          id,
		CategoryID:  categoryID,
		Amount:      b.amount(amount),
		Description: "recurring " + id,
		DayOfMonth:  day,
	})
	return b
}

// WithDarkMode sets the theme flag.
func (b *SnapshotBuilder) WithDarkMode(dark bool) *SnapshotBuilder {
	b.snap.DarkMode = dark
	return b
}

// Build returns a copy of the snapshot built so far.
func (b *SnapshotBuilder) Build() *model.Snapshot {
	return b.snap.Clone()
}

func (b *SnapshotBuilder) amount(s string) decimal.Decimal {
	b.t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		b.t.Fatalf("invalid test amount %q: %v", s, err)
	}
	return d
}
