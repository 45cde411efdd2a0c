package models

// Budget represents a monthly spending limit for a category. Spent starts at
// zero and is not yet maintained by the transaction flow.
type Budget struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Limit      int64  `json:"limit"`
	Spent      int64  `json:"spent"`
	Month      string `json:"month"` // YYYY-MM
}
