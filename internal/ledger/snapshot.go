package ledger

import "tanzine/internal/models"

// Snapshot returns a deep copy of the complete current state. Callers own the
// copy and may hold it across later mutations.
func (l *Ledger) Snapshot() models.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}
