package ledger

import (
	"time"

	apperrors "tanzine/internal/errors"
	"tanzine/internal/models"
)

// GoalSpec carries the caller-provided fields for AddGoal.
type GoalSpec struct {
	Name         string
	TargetAmount int64
	Deadline     time.Time
	Color        string
}

// AddGoal appends a savings goal with a fresh id and CurrentAmount initialized
// to zero. Goals have no cross-entity side effects.
func (l *Ledger) AddGoal(spec GoalSpec) (models.Goal, error) {
	if spec.Name == "" {
		return models.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if spec.TargetAmount <= 0 {
		return models.Goal{}, apperrors.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	goal := models.Goal{
		ID:            l.newID(),
		Name:          spec.Name,
		TargetAmount:  spec.TargetAmount,
		CurrentAmount: 0,
		Deadline:      spec.Deadline,
		Color:         spec.Color,
	}

	next := l.state.Clone()
	next.Goals = append(next.Goals, goal)
	if err := l.commit(next); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// Goals returns all goals in insertion order.
func (l *Ledger) Goals() []models.Goal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Goal, len(l.state.Goals))
	copy(out, l.state.Goals)
	return out
}
