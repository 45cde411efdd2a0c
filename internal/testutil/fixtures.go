package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tanzine/internal/ledger"
	"tanzine/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// OnboardTestUser completes onboarding with a generated name and BRL.
func OnboardTestUser(t *testing.T, l *ledger.Ledger) models.UserProfile {
	t.Helper()

	profile, err := l.Onboard(fmt.Sprintf("User %d", nextID()), "BRL")
	if err != nil {
		t.Fatalf("failed to onboard test user: %v", err)
	}
	return profile
}

// CreateTestAccount creates a checking account with zero balance.
func CreateTestAccount(t *testing.T, l *ledger.Ledger) models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, l, 0)
}

// CreateTestAccountWithBalance creates a checking account with the given balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, l *ledger.Ledger, balance int64) models.Account {
	t.Helper()

	account, err := l.AddAccount(ledger.AccountSpec{
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     models.AccountTypeChecking,
		Balance:  balance,
		Currency: "BRL",
	})
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction records a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, l *ledger.Ledger, accountID string, txType models.TransactionType, amount int64) models.Transaction {
	t.Helper()

	tx, err := l.AddTransaction(ledger.TransactionSpec{
		AccountID:   accountID,
		Amount:      amount,
		Type:        txType,
		CategoryID:  "cat_food",
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates a goal with a one-year deadline.
func CreateTestGoal(t *testing.T, l *ledger.Ledger) models.Goal {
	t.Helper()

	goal, err := l.AddGoal(ledger.GoalSpec{
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: 100000, // R$1000.00
		Deadline:     time.Now().AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestBudget creates a budget for the food category in the current month.
func CreateTestBudget(t *testing.T, l *ledger.Ledger) models.Budget {
	t.Helper()

	budget, err := l.AddBudget(ledger.BudgetSpec{
		CategoryID: "cat_food",
		Limit:      50000, // R$500.00
		Month:      time.Now().Format("2006-01"),
	})
	if err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
