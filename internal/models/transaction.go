package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Installments describes an installment purchase ("3 of 12").
type Installments struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Transaction represents a recorded movement of money. Amount is always a
// non-negative magnitude in cents; the direction comes from Type. Transfers
// carry the destination account in ToAccountID.
type Transaction struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	ToAccountID  string          `json:"to_account_id,omitempty"`
	Amount       int64           `json:"amount"`
	Type         TransactionType `json:"type"`
	CategoryID   string          `json:"category_id"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Tags         []string        `json:"tags,omitempty"`
	IsRecurring  bool            `json:"is_recurring,omitempty"`
	Installments *Installments   `json:"installments,omitempty"`
}
