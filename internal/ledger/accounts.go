package ledger

import (
	apperrors "tanzine/internal/errors"
	"tanzine/internal/models"
)

// AccountSpec carries the caller-provided fields for AddAccount.
type AccountSpec struct {
	Name     string
	Type     models.AccountType
	Balance  int64
	Currency string
	Color    string

	// Credit card fields
	CreditLimit int64
	ClosingDay  int
	DueDay      int
}

// AddAccount appends a new account with a fresh id and creation timestamp.
// Accounts keep insertion order; the first one becomes the primary account.
func (l *Ledger) AddAccount(spec AccountSpec) (models.Account, error) {
	if spec.Name == "" {
		return models.Account{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	switch spec.Type {
	case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeCredit,
		models.AccountTypeCash, models.AccountTypeInvestment:
	default:
		return models.Account{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown account type")
	}
	if spec.Currency == "" {
		spec.Currency = l.Profile().Currency
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account := models.Account{
		ID:          l.newID(),
		Name:        spec.Name,
		Type:        spec.Type,
		Balance:     spec.Balance,
		Currency:    spec.Currency,
		LastUpdated: l.now(),
		Color:       spec.Color,
		CreditLimit: spec.CreditLimit,
		ClosingDay:  spec.ClosingDay,
		DueDay:      spec.DueDay,
	}

	next := l.state.Clone()
	next.Accounts = append(next.Accounts, account)
	if err := l.commit(next); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Accounts returns all accounts in insertion order.
func (l *Ledger) Accounts() []models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Account, len(l.state.Accounts))
	copy(out, l.state.Accounts)
	return out
}

// AccountByID returns the account with the given id.
func (l *Ledger) AccountByID(id string) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.state.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, apperrors.ErrAccountNotFound
}

// PrimaryAccount returns the first account, the default target when the UI
// does not choose one.
func (l *Ledger) PrimaryAccount() (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.state.Accounts) == 0 {
		return models.Account{}, apperrors.ErrNoAccounts
	}
	return l.state.Accounts[0], nil
}

// TotalBalance sums the balances of all accounts.
func (l *Ledger) TotalBalance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total int64
	for _, a := range l.state.Accounts {
		total += a.Balance
	}
	return total
}

// findAccount returns the index of the account with the given id in the
// snapshot, or -1. Callers must hold l.mu.
func findAccount(s *models.Snapshot, id string) int {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return i
		}
	}
	return -1
}
