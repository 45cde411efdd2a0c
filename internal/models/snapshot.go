package models

// Snapshot is the complete value of the ledger state at a point in time. It is
// what gets serialized into the persistence blob and what read-side callers
// receive; holders must treat it as immutable.
type Snapshot struct {
	User         UserProfile   `json:"user"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Goals        []Goal        `json:"goals"`
}

// NewSnapshot returns the documented initial empty state: not onboarded, BRL
// default currency, all collections empty.
func NewSnapshot() Snapshot {
	return Snapshot{
		User: UserProfile{
			IsOnboarded: false,
			Currency:    "BRL",
			Name:        "",
		},
		Accounts:     []Account{},
		Transactions: []Transaction{},
		Budgets:      []Budget{},
		Goals:        []Goal{},
	}
}

// Clone returns a deep copy of the snapshot. Mutating the copy never touches
// slices shared with previous readers.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Accounts = make([]Account, len(s.Accounts))
	copy(out.Accounts, s.Accounts)
	out.Transactions = make([]Transaction, len(s.Transactions))
	for i, tx := range s.Transactions {
		out.Transactions[i] = tx.clone()
	}
	out.Budgets = make([]Budget, len(s.Budgets))
	copy(out.Budgets, s.Budgets)
	out.Goals = make([]Goal, len(s.Goals))
	copy(out.Goals, s.Goals)
	return out
}

func (t Transaction) clone() Transaction {
	out := t
	if t.Tags != nil {
		out.Tags = make([]string, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	if t.Installments != nil {
		inst := *t.Installments
		out.Installments = &inst
	}
	return out
}
