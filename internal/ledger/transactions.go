package ledger

import (
	"time"

	"tanzine/internal/catalog"
	apperrors "tanzine/internal/errors"
	"tanzine/internal/models"
)

// TransactionSpec carries the caller-provided fields for AddTransaction.
// Amount is a non-negative magnitude in cents; Type gives the direction.
type TransactionSpec struct {
	AccountID    string
	ToAccountID  string
	Amount       int64
	Type         models.TransactionType
	CategoryID   string
	Description  string
	Date         time.Time
	Tags         []string
	IsRecurring  bool
	Installments *models.Installments
}

// AddTransaction records a transaction and applies its balance effect
// atomically: income credits the account, expense debits it, and a transfer
// debits the source while crediting the destination. The transaction list is
// kept newest-first.
//
// A dangling account id is rejected instead of recording an orphan entry, and
// unknown category ids are stored as the catalog default.
func (l *Ledger) AddTransaction(spec TransactionSpec) (models.Transaction, error) {
	if spec.Amount <= 0 {
		return models.Transaction{}, apperrors.ErrInvalidAmount
	}
	switch spec.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeTransfer:
	default:
		return models.Transaction{}, apperrors.ErrInvalidTransactionType
	}
	if spec.Type == models.TransactionTypeTransfer {
		if spec.ToAccountID == "" {
			return models.Transaction{}, apperrors.ErrMissingTransferDestination
		}
		if spec.ToAccountID == spec.AccountID {
			return models.Transaction{}, apperrors.ErrSameAccountTransfer
		}
	} else if spec.ToAccountID != "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_account_id is only valid for transfers")
	}
	if !catalog.IsKnown(spec.CategoryID) {
		spec.CategoryID = catalog.Default.ID
	}
	if spec.Date.IsZero() {
		spec.Date = l.now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.Clone()

	src := findAccount(&next, spec.AccountID)
	if src < 0 {
		return models.Transaction{}, apperrors.ErrAccountNotFound
	}
	dst := -1
	if spec.Type == models.TransactionTypeTransfer {
		dst = findAccount(&next, spec.ToAccountID)
		if dst < 0 {
			return models.Transaction{}, apperrors.ErrAccountNotFound
		}
	}

	tx := models.Transaction{
		ID:           l.newID(),
		AccountID:    spec.AccountID,
		ToAccountID:  spec.ToAccountID,
		Amount:       spec.Amount,
		Type:         spec.Type,
		CategoryID:   spec.CategoryID,
		Description:  spec.Description,
		Date:         spec.Date,
		Tags:         spec.Tags,
		IsRecurring:  spec.IsRecurring,
		Installments: spec.Installments,
	}

	// Newest first: the display order is part of the contract.
	next.Transactions = append([]models.Transaction{tx}, next.Transactions...)
	applyEffect(&next, tx, 1)
	touch(&next, l.now(), src, dst)

	if err := l.commit(next); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes a transaction and reverses its full balance
// effect, including both legs of a transfer. Deleting an unknown id returns
// ErrTransactionNotFound and leaves the snapshot untouched.
func (l *Ledger) DeleteTransaction(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.Clone()

	idx := -1
	for i := range next.Transactions {
		if next.Transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrTransactionNotFound
	}

	tx := next.Transactions[idx]
	next.Transactions = append(next.Transactions[:idx], next.Transactions[idx+1:]...)
	applyEffect(&next, tx, -1)
	touch(&next, l.now(), findAccount(&next, tx.AccountID), findAccount(&next, tx.ToAccountID))

	return l.commit(next)
}

// Transactions returns all transactions, newest first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Transaction, len(l.state.Transactions))
	copy(out, l.state.Transactions)
	return out
}

// RecentTransactions returns up to n of the most recent transactions.
func (l *Ledger) RecentTransactions(n int) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.state.Transactions) {
		n = len(l.state.Transactions)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Transaction, n)
	copy(out, l.state.Transactions[:n])
	return out
}

// TransactionByID returns the transaction with the given id.
func (l *Ledger) TransactionByID(id string) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tx := range l.state.Transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// applyEffect mutates account balances by the transaction's effect. direction
// is +1 on add and -1 on delete, so every delta applied here cancels exactly
// when reversed.
func applyEffect(s *models.Snapshot, tx models.Transaction, direction int64) {
	delta := tx.Amount * direction
	src := findAccount(s, tx.AccountID)
	if src < 0 {
		return
	}

	switch tx.Type {
	case models.TransactionTypeIncome:
		s.Accounts[src].Balance += delta
	case models.TransactionTypeExpense:
		s.Accounts[src].Balance -= delta
	case models.TransactionTypeTransfer:
		s.Accounts[src].Balance -= delta
		if dst := findAccount(s, tx.ToAccountID); dst >= 0 {
			s.Accounts[dst].Balance += delta
		}
	}
}

// touch refreshes LastUpdated on the affected accounts.
func touch(s *models.Snapshot, now time.Time, indexes ...int) {
	for _, i := range indexes {
		if i >= 0 && i < len(s.Accounts) {
			s.Accounts[i].LastUpdated = now
		}
	}
}
