package model

// Snapshot is the whole persisted application state. It is always stored
// and restored as one value.
type Snapshot struct {
	Transactions      []Transaction      `json:"transactions" yaml:"transactions"`
	IncomeCategories  []Category         `json:"incomeCategories" yaml:"incomeCategories"`
	ExpenseCategories []Category         `json:"expenseCategories" yaml:"expenseCategories"`
	RecurringExpenses []RecurringExpense `json:"recurringExpenses" yaml:"recurringExpenses"`
	DarkMode          bool               `json:"darkMode" yaml:"darkMode"`
}

// DefaultSnapshot is the first-run state: seed categories and nothing else.
func DefaultSnapshot(darkMode bool) *Snapshot {
	return &Snapshot{
		Transactions:      []Transaction{},
		IncomeCategories:  DefaultIncomeCategories(),
		ExpenseCategories: DefaultExpenseCategories(),
		RecurringExpenses: []RecurringExpense{},
		DarkMode:          darkMode,
	}
}

// Normalize fills collections a stored or restored value left out. Missing
// category lists fall back to the seed categories; missing transaction and
// recurring lists become empty.
func (s *Snapshot) Normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.IncomeCategories == nil {
		s.IncomeCategories = DefaultIncomeCategories()
	}
	if s.ExpenseCategories == nil {
		s.ExpenseCategories = DefaultExpenseCategories()
	}
	if s.RecurringExpenses == nil {
		s.RecurringExpenses = []RecurringExpense{}
	}
}

// Clone returns a copy whose slices can be modified independently.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Transactions:      cloneSlice(s.Transactions),
		IncomeCategories:  cloneSlice(s.IncomeCategories),
		ExpenseCategories: cloneSlice(s.ExpenseCategories),
		RecurringExpenses: cloneSlice(s.RecurringExpenses),
		DarkMode:          s.DarkMode,
	}
}

// cloneSlice copies src, keeping nil and empty distinct.
func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	return append(make([]T, 0, len(src)), src...)
}

// Categories returns income categories followed by expense categories.
func (s *Snapshot) Categories() []Category {
	all := make([]Category, 0, len(s.IncomeCategories)+len(s.ExpenseCategories))
	all = append(all, s.IncomeCategories...)
	return append(all, s.ExpenseCategories...)
}

// CategoriesOf returns the list holding categories of type t.
func (s *Snapshot) CategoriesOf(t TransactionType) []Category {
	if t == TypeIncome {
		return s.IncomeCategories
	}
	return s.ExpenseCategories
}

// FindCategory looks id up in both category lists.
func (s *Snapshot) FindCategory(id string) (Category, bool) {
	for _, c := range s.IncomeCategories {
		if c.ID == id {
			return c, true
		}
	}
	for _, c := range s.ExpenseCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName resolves id to a display name, or UncategorizedName.
func (s *Snapshot) CategoryName(id string) string {
	if c, ok := s.FindCategory(id); ok {
		return c.Name
	}
	return UncategorizedName
}

// FindTransaction returns the index of the transaction with id, or -1.
func (s *Snapshot) FindTransaction(id string) int {
	for i, t := range s.Transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// RecurringFor returns the recurring expenses that reference categoryID.
func (s *Snapshot) RecurringFor(categoryID string) []RecurringExpense {
	var refs []RecurringExpense
	for _, r := range s.RecurringExpenses {
		if r.CategoryID == categoryID {
			refs = append(refs, r)
		}
	}
	return refs
}
