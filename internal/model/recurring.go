package model

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/common"
)

// Bounds for RecurringExpense.DayOfMonth. No calendar clamping is applied.
const (
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
)

// RecurringExpense is a nominal monthly commitment. It is never turned into
// transactions automatically.
type RecurringExpense struct {
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	ID          string          `json:"id" yaml:"id"`
	CategoryID  string          `json:"categoryId" yaml:"categoryId"`
	Description string          `json:"description" yaml:"description"`
	DayOfMonth  int             `json:"dayOfMonth" yaml:"dayOfMonth"`
}

// Validate checks amount and day range. Category resolution needs the
// snapshot and is done by the journal.
func (r RecurringExpense) Validate() error {
	if !r.Amount.IsPositive() {
		return common.Validationf("recurring expense amount must be greater than zero")
	}
	if r.DayOfMonth < MinDayOfMonth || r.DayOfMonth > MaxDayOfMonth {
		return common.Validationf("day of month %d must be between %d and %d",
			r.DayOfMonth, MinDayOfMonth, MaxDayOfMonth)
	}
	if r.CategoryID == "" {
		return common.Validationf("recurring expense needs a category")
	}
	return nil
}
