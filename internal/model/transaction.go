package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry.
type Transaction struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	ID          string          `json:"id" yaml:"id"`
	CategoryID  string          `json:"categoryId" yaml:"categoryId"`
	Type        TransactionType `json:"type" yaml:"type"`
	Description string          `json:"description" yaml:"description"`
}

// Signed returns the amount as a contribution to net flow: positive for
// income, negative for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
