package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

// NewTransaction is the input for AddTransaction.
type NewTransaction struct {
	Amount      decimal.Decimal
	Type        model.TransactionType
	CategoryID  string
	Description string
}

// AddTransaction records a transaction dated now.
func (j *Journal) AddTransaction(ctx context.Context, in NewTransaction) (model.Transaction, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !in.Type.Valid() {
		return model.Transaction{}, common.Validationf("unknown transaction type %q", in.Type)
	}
	if !in.Amount.IsPositive() {
		return model.Transaction{}, common.Validationf("amount must be greater than zero")
	}
	if err := j.checkCategory(in.CategoryID, in.Type); err != nil {
		return model.Transaction{}, err
	}

	t := model.Transaction{
		ID:          j.newID(PrefixTransaction),
		CategoryID:  in.CategoryID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        j.now(),
	}

	next := j.snap.Clone()
	next.Transactions = append(next.Transactions, t)
	j.commit(ctx, next, "add_transaction")

	slog.Debug("Added transaction", "id", t.ID, "type", t.Type, "amount", t.Amount.String())
	return t, nil
}

// Transaction looks a transaction up by id.
func (j *Journal) Transaction(id string) (model.Transaction, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if i := j.snap.FindTransaction(id); i >= 0 {
		return j.snap.Transactions[i], true
	}
	return model.Transaction{}, false
}

// EditTransaction rewrites the category, amount and description of the
// transaction with id. Type and date never change.
//
// An amount of exactly zero deletes the transaction instead; deleted
// reports when that happened.
func (j *Journal) EditTransaction(ctx context.Context, id, categoryID string, amount decimal.Decimal, description string) (deleted bool, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.snap.FindTransaction(id)
	if i < 0 {
		return false, common.Validationf("unknown transaction %q", id)
	}
	if amount.IsNegative() {
		return false, common.Validationf("amount cannot be negative")
	}

	next := j.snap.Clone()

	if amount.IsZero() {
		next.Transactions = append(next.Transactions[:i], next.Transactions[i+1:]...)
		j.commit(ctx, next, "delete_transaction")
		slog.Debug("Deleted transaction through zero-amount edit", "id", id)
		return true, nil
	}

	t := next.Transactions[i]
	if err := j.checkCategory(categoryID, t.Type); err != nil {
		return false, err
	}
	t.CategoryID = categoryID
	t.Amount = amount
	t.Description = strings.TrimSpace(description)
	next.Transactions[i] = t

	j.commit(ctx, next, "edit_transaction")
	return false, nil
}

// checkCategory requires categoryID to name a category of type t. Callers
// hold mu.
func (j *Journal) checkCategory(categoryID string, t model.TransactionType) error {
	c, ok := j.snap.FindCategory(categoryID)
	if !ok {
		return common.Validationf("unknown category %q", categoryID)
	}
	if c.Type != t {
		return common.Validationf("category %q is an %s category, not %s", c.Name, c.Type, t)
	}
	return nil
}

// ImportResult counts what ImportTransactions did.
type ImportResult struct {
	Added     int
	Duplicate int
}

// ImportTransactions appends externally sourced transactions that carry
// their own ids and dates. Entries whose id is already present are skipped,
// so re-importing a statement is harmless. Every entry is validated before
// anything changes, and the batch is saved once.
func (j *Journal) ImportTransactions(ctx context.Context, txns []model.Transaction) (ImportResult, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var result ImportResult
	seen := make(map[string]bool, len(j.snap.Transactions)+len(txns))
	for _, t := range j.snap.Transactions {
		seen[t.ID] = true
	}

	fresh := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.ID == "" {
			return ImportResult{}, common.Validationf("imported transaction has no id")
		}
		if !t.Amount.IsPositive() {
			return ImportResult{}, common.Validationf("imported transaction %q: amount must be greater than zero", t.ID)
		}
		if err := j.checkCategory(t.CategoryID, t.Type); err != nil {
			return ImportResult{}, fmt.Errorf("imported transaction %q: %w", t.ID, err)
		}
		if seen[t.ID] {
			result.Duplicate++
			continue
		}
		seen[t.ID] = true
		t.Description = strings.TrimSpace(t.Description)
		fresh = append(fresh, t)
	}

	if len(fresh) == 0 {
		return result, nil
	}

	next := j.snap.Clone()
	next.Transactions = append(next.Transactions, fresh...)
	j.commit(ctx, next, "import_transactions")
	result.Added = len(fresh)

	slog.Info("Imported transactions", "added", result.Added, "duplicate", result.Duplicate)
	return result, nil
}
