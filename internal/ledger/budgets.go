package ledger

import (
	"regexp"

	"tanzine/internal/catalog"
	apperrors "tanzine/internal/errors"
	"tanzine/internal/models"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// BudgetSpec carries the caller-provided fields for AddBudget.
type BudgetSpec struct {
	CategoryID string
	Limit      int64
	Month      string // YYYY-MM
}

// AddBudget appends a budget with a fresh id and Spent initialized to zero.
// Budgets have no cross-entity side effects.
func (l *Ledger) AddBudget(spec BudgetSpec) (models.Budget, error) {
	if !catalog.IsKnown(spec.CategoryID) {
		return models.Budget{}, apperrors.ErrCategoryNotFound
	}
	if spec.Limit <= 0 {
		return models.Budget{}, apperrors.ErrInvalidAmount
	}
	if !monthPattern.MatchString(spec.Month) {
		return models.Budget{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be YYYY-MM")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	budget := models.Budget{
		ID:         l.newID(),
		CategoryID: spec.CategoryID,
		Limit:      spec.Limit,
		Spent:      0,
		Month:      spec.Month,
	}

	next := l.state.Clone()
	next.Budgets = append(next.Budgets, budget)
	if err := l.commit(next); err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

// Budgets returns all budgets in insertion order.
func (l *Ledger) Budgets() []models.Budget {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Budget, len(l.state.Budgets))
	copy(out, l.state.Budgets)
	return out
}
