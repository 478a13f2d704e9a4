package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultIncomeCategories returns the first-run income categories.
func DefaultIncomeCategories() []Category {
	return []Category{
		{ID: "cat-inc-1", Name: "Salary", Icon: "briefcase", Type: TypeIncome},
	}
}

// DefaultExpenseCategories returns the first-run expense categories.
func DefaultExpenseCategories() []Category {
	return []Category{
		{ID: "cat-exp-1", Name: "Rent", Icon: "home", Type: TypeExpense},
		{ID: "cat-exp-2", Name: "Groceries", Icon: "shopping-cart", Type: TypeExpense},
		{ID: "cat-exp-3", Name: "Supplies", Icon: "gas-pump", Type: TypeExpense},
		{ID: "cat-exp-4", Name: "Online Shopping", Icon: "credit-card", Type: TypeExpense},
		{ID: "cat-exp-5", Name: "Dinner with friends", Icon: "utensils", Type: TypeExpense},
		{ID: "cat-exp-6", Name: "Streaming Service", Icon: "tv", Type: TypeExpense},
		{ID: "cat-exp-7", Name: "Gym Membership", Icon: "dumbbell", Type: TypeExpense},
		{ID: "cat-exp-8", Name: "Phone Bill", Icon: "mobile-alt", Type: TypeExpense},
		{ID: "cat-exp-9", Name: "Transportation", Icon: "bus", Type: TypeExpense},
		{ID: "cat-exp-10", Name: "Restaurants", Icon: "utensils", Type: TypeExpense},
		{ID: "cat-exp-11", Name: "Shopping", Icon: "shopping-bag", Type: TypeExpense},
	}
}

// SampleTransactions returns the illustrative transactions, dated on fixed
// days of now's month at now's time of day.
func SampleTransactions(now time.Time) []Transaction {
	on := func(day int) time.Time {
		return time.Date(now.Year(), now.Month(), day,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	}

	return []Transaction{
		{ID: "t1", CategoryID: "cat-inc-1", Type: TypeIncome, Amount: decimal.NewFromInt(2500), Description: "Monthly paycheck", Date: on(1)},
		{ID: "t2", CategoryID: "cat-exp-1", Type: TypeExpense, Amount: decimal.NewFromInt(1200), Description: "Monthly payment", Date: on(2)},
		{ID: "t3", CategoryID: "cat-exp-2", Type: TypeExpense, Amount: decimal.RequireFromString("150.25"), Description: "Supermarket run", Date: on(3)},
		{ID: "t4", CategoryID: "cat-exp-3", Type: TypeExpense, Amount: decimal.NewFromInt(65), Description: "Topped up the tank", Date: on(5)},
		{ID: "t5", CategoryID: "cat-exp-4", Type: TypeExpense, Amount: decimal.NewFromInt(110), Description: "New jacket", Date: on(10)},
		{ID: "t6", CategoryID: "cat-exp-5", Type: TypeExpense, Amount: decimal.RequireFromString("85.50"), Description: "Italian restaurant", Date: on(12)},
	}
}

// SampleRecurringExpenses returns the illustrative recurring expenses.
func SampleRecurringExpenses() []RecurringExpense {
	return []RecurringExpense{
		{ID: "re1", CategoryID: "cat-exp-1", Amount: decimal.NewFromInt(1200), Description: "Due on 1st of every month", DayOfMonth: 1},
		{ID: "re2", CategoryID: "cat-exp-6", Amount: decimal.RequireFromString("15.99"), Description: "Due on 5th of every month", DayOfMonth: 5},
		{ID: "re3", CategoryID: "cat-exp-7", Amount: decimal.NewFromInt(40), Description: "Due on 20th of every month", DayOfMonth: 20},
		{ID: "re4", CategoryID: "cat-exp-8", Amount: decimal.NewFromInt(75), Description: "Due on 28th of every month", DayOfMonth: 28},
	}
}

// SampleSnapshot returns the full sample data set. darkMode is carried over
// from the caller's current state.
func SampleSnapshot(now time.Time, darkMode bool) *Snapshot {
	return &Snapshot{
		Transactions:      SampleTransactions(now),
		IncomeCategories:  DefaultIncomeCategories(),
		ExpenseCategories: DefaultExpenseCategories(),
		RecurringExpenses: SampleRecurringExpenses(),
		DarkMode:          darkMode,
	}
}
