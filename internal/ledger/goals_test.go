package ledger_test

import (
	"testing"
	"time"

	"tanzine/internal/ledger"
	"tanzine/internal/testutil"
)

func TestAddGoal(t *testing.T) {
	t.Run("current amount starts at zero", func(t *testing.T) {
		l := testutil.SetupTestLedger(t)

		goal, err := l.AddGoal(ledger.GoalSpec{
			Name:         "Trip to Lisbon",
			TargetAmount: 800000,
			Deadline:     time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
			Color:        "#7F7BD8",
		})
		testutil.AssertNoError(t, err)

		if goal.CurrentAmount != 0 {
			t.Errorf("expected current amount 0, got %d", goal.CurrentAmount)
		}
		if goal.Progress() != 0 {
			t.Errorf("expected progress 0, got %f", goal.Progress())
		}
		if len(l.Goals()) != 1 {
			t.Errorf("expected 1 goal, got %d", len(l.Goals()))
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		l := testutil.SetupTestLedger(t)

		_, err := l.AddGoal(ledger.GoalSpec{TargetAmount: 100, Deadline: time.Now()})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		l := testutil.SetupTestLedger(t)

		_, err := l.AddGoal(ledger.GoalSpec{Name: "X", TargetAmount: 0, Deadline: time.Now()})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})
}
