package models

import "time"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a financial account owned by the user. Balances are in
// minor currency units (cents) and may go negative. Accounts keep their
// insertion order; the first account is the default target when the UI does
// not pick one explicitly.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Balance     int64       `json:"balance"`
	Currency    string      `json:"currency"`
	LastUpdated time.Time   `json:"last_updated"`
	Color       string      `json:"color,omitempty"`

	// For credit cards
	CreditLimit int64 `json:"credit_limit,omitempty"`
	ClosingDay  int   `json:"closing_day,omitempty"`
	DueDay      int   `json:"due_day,omitempty"`
}
