package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

// AddCategory creates a category in the list matching t.
func (j *Journal) AddCategory(ctx context.Context, t model.TransactionType, name, icon string) (model.Category, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !t.Valid() {
		return model.Category{}, common.Validationf("unknown category type %q", t)
	}
	name, err := model.ValidateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	c := model.Category{
		ID:   j.newID(PrefixCategory),
		Name: name,
		Icon: strings.TrimSpace(icon),
		Type: t,
	}

	next := j.snap.Clone()
	if t == model.TypeIncome {
		next.IncomeCategories = append(next.IncomeCategories, c)
	} else {
		next.ExpenseCategories = append(next.ExpenseCategories, c)
	}
	j.commit(ctx, next, "add_category")

	slog.Info("Created category", "id", c.ID, "name", c.Name, "type", c.Type)
	return c, nil
}

// UpdateCategory renames the category with id and replaces its icon. The
// category keeps its type and stays in its list.
func (j *Journal) UpdateCategory(ctx context.Context, id, name, icon string) (model.Category, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	name, err := model.ValidateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	next := j.snap.Clone()
	updated, ok := renameIn(next.IncomeCategories, id, name, icon)
	if !ok {
		updated, ok = renameIn(next.ExpenseCategories, id, name, icon)
	}
	if !ok {
		return model.Category{}, common.Validationf("unknown category %q", id)
	}

	j.commit(ctx, next, "update_category")
	return updated, nil
}

func renameIn(list []model.Category, id, name, icon string) (model.Category, bool) {
	for i := range list {
		if list[i].ID == id {
			list[i].Name = name
			list[i].Icon = strings.TrimSpace(icon)
			return list[i], true
		}
	}
	return model.Category{}, false
}

// DeleteCategory removes the category with id from both lists. It fails
// with ErrReferentialIntegrity while a recurring expense uses the category.
// Transactions that reference it are kept and show as uncategorized.
// Deleting an unknown id changes nothing.
func (j *Journal) DeleteCategory(ctx context.Context, id string) (removed bool, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if refs := j.snap.RecurringFor(id); len(refs) > 0 {
		return false, fmt.Errorf("%w: category %q is used by %d recurring expense(s), delete or reassign them first",
			common.ErrReferentialIntegrity, j.snap.CategoryName(id), len(refs))
	}

	next := j.snap.Clone()
	next.IncomeCategories = withoutCategory(next.IncomeCategories, id)
	next.ExpenseCategories = withoutCategory(next.ExpenseCategories, id)

	if len(next.IncomeCategories)+len(next.ExpenseCategories) == len(j.snap.IncomeCategories)+len(j.snap.ExpenseCategories) {
		return false, nil
	}

	j.commit(ctx, next, "delete_category")
	slog.Info("Deleted category", "id", id)
	return true, nil
}

func withoutCategory(list []model.Category, id string) []model.Category {
	kept := make([]model.Category, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return kept
}
