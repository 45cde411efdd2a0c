// Package insight produces the one-line financial advice shown on the
// dashboard. The text comes from an external generation service; any failure
// there degrades to a static fallback line and never reaches ledger state.
package insight

import (
	"context"
	"fmt"
	"strings"

	"tanzine/internal/models"
)

// Fallback is the advice shown when the generation service fails or returns
// an empty reply.
const Fallback = "Review your spending to find one saving today."

// Empty is the advice shown before any transaction exists.
const Empty = "Add transactions to receive advice."

// Generator turns a prompt into a short advice string.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// BuildPrompt assembles the generation prompt from the most recent
// transactions and the current total balance. The 15-word cap is a prompt
// instruction, not enforced on the reply.
func BuildPrompt(recent []models.Transaction, totalBalance int64) string {
	pairs := make([]string, 0, len(recent))
	for _, tx := range recent {
		pairs = append(pairs, fmt.Sprintf("%s: %.2f", tx.Description, float64(tx.Amount)/100))
	}
	return fmt.Sprintf(
		"Analyze these financial transactions and give one short, motivating piece of advice (15 words max): %s. Current balance: %.2f",
		strings.Join(pairs, ", "),
		float64(totalBalance)/100,
	)
}
