package journal

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

// SaveRecurringExpense adds r when r.ID is empty and otherwise replaces the
// entry with that id. The amount must be positive, the day within 1..31 and
// the category an existing expense category.
func (j *Journal) SaveRecurringExpense(ctx context.Context, r model.RecurringExpense) (model.RecurringExpense, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := r.Validate(); err != nil {
		return model.RecurringExpense{}, err
	}
	if err := j.checkCategory(r.CategoryID, model.TypeExpense); err != nil {
		return model.RecurringExpense{}, err
	}
	r.Description = strings.TrimSpace(r.Description)

	next := j.snap.Clone()

	if r.ID == "" {
		r.ID = j.newID(PrefixRecurring)
		next.RecurringExpenses = append(next.RecurringExpenses, r)
		j.commit(ctx, next, "add_recurring_expense")
		slog.Info("Created recurring expense", "id", r.ID, "day", r.DayOfMonth)
		return r, nil
	}

	replaced := false
	for i := range next.RecurringExpenses {
		if next.RecurringExpenses[i].ID == r.ID {
			next.RecurringExpenses[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		return model.RecurringExpense{}, common.Validationf("unknown recurring expense %q", r.ID)
	}

	j.commit(ctx, next, "update_recurring_expense")
	return r, nil
}

// DeleteRecurringExpense removes the entry with id. Unknown ids are ignored.
func (j *Journal) DeleteRecurringExpense(ctx context.Context, id string) (removed bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	next := j.snap.Clone()
	kept := next.RecurringExpenses[:0]
	for _, r := range next.RecurringExpenses {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(j.snap.RecurringExpenses) {
		return false
	}
	next.RecurringExpenses = kept

	j.commit(ctx, next, "delete_recurring_expense")
	slog.Info("Deleted recurring expense", "id", id)
	return true
}
