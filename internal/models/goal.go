package models

import "time"

// Goal represents a savings goal. CurrentAmount starts at zero; contributions
// are driven by the caller, there is no automatic funding logic.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  int64     `json:"target_amount"`
	CurrentAmount int64     `json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	Color         string    `json:"color,omitempty"`
}

// Progress returns the completion ratio in [0, 1] when the target is positive.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := float64(g.CurrentAmount) / float64(g.TargetAmount)
	if p > 1 {
		return 1
	}
	return p
}
