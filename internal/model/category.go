// Package model defines the cash-flow journal's entities and their invariants.
package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/cashflow-journal/internal/common"
)

// TransactionType indicates whether money came in or went out. Categories
// carry the same type as the transactions filed under them.
type TransactionType string

const (
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
)

// UncategorizedName is shown when a category reference no longer resolves.
const UncategorizedName = "Uncategorized"

// ParseTransactionType accepts "income" or "expense" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", common.Validationf("unknown transaction type %q (want income or expense)", s)
	}
}

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category groups transactions of one type under a display name and icon.
type Category struct {
	ID   string          `json:"id" yaml:"id"`
	Name string          `json:"name" yaml:"name"`
	Icon string          `json:"icon" yaml:"icon"`
	Type TransactionType `json:"type" yaml:"type"`
}

// ValidateCategoryName trims name and rejects an empty result.
func ValidateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", common.Validationf("category name cannot be empty")
	}
	return trimmed, nil
}

// Validate checks the category's own fields.
func (c Category) Validate() error {
	if c.ID == "" {
		return common.Validationf("category id cannot be empty")
	}
	if _, err := ValidateCategoryName(c.Name); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return common.Validationf("category %s has unknown type %q", c.ID, c.Type)
	}
	return nil
}

func (c Category) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Type)
}
