// Package ledger implements the store that owns all user state: profile,
// accounts, transactions, budgets, and goals. It is the sole authority over
// account balances, which always equal the net effect of the applied
// transactions. Mutations run behind a single-writer mutex, produce a new
// snapshot value, persist it through the blob store, and only then commit in
// memory, so a failed operation always leaves the prior state intact.
package ledger

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"tanzine/internal/blob"
	apperrors "tanzine/internal/errors"
	"tanzine/internal/models"
	"tanzine/internal/uuid"
)

// Ledger is the in-process finance store. Construct it with New at startup and
// hand references to collaborators; there is no package-level instance.
type Ledger struct {
	mu    sync.Mutex
	state models.Snapshot

	store blob.Store
	slot  string

	now   func() time.Time
	newID func() string
}

// Option customizes a Ledger, mainly for tests.
type Option func(*Ledger)

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides the entity id generator.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) { l.newID = gen }
}

// New constructs a Ledger backed by the given blob store slot, restoring the
// persisted snapshot when one exists. A missing or empty slot yields the
// documented initial state.
func New(store blob.Store, slot string, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		state: models.NewSnapshot(),
		store: store,
		slot:  slot,
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(l)
	}

	data, err := store.Load(slot)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if len(data) > 0 {
		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrPersistence, fmt.Errorf("corrupt snapshot blob: %w", err))
		}
		normalize(&snap)
		l.state = snap
	}

	return l, nil
}

// normalize repairs nil collections after decoding older blobs.
func normalize(s *models.Snapshot) {
	if s.Accounts == nil {
		s.Accounts = []models.Account{}
	}
	if s.Transactions == nil {
		s.Transactions = []models.Transaction{}
	}
	if s.Budgets == nil {
		s.Budgets = []models.Budget{}
	}
	if s.Goals == nil {
		s.Goals = []models.Goal{}
	}
}

// commit persists the candidate snapshot and, on success, makes it current.
// Callers must hold l.mu.
func (l *Ledger) commit(next models.Snapshot) error {
	data, err := json.Marshal(next)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if err := l.store.Save(l.slot, data); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	l.state = next
	return nil
}

// Flush rewrites the current snapshot to the blob store. Called on shutdown.
func (l *Ledger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.commit(l.state.Clone())
}

// Reset destroys all state: every collection returns to its initial empty
// value and the persisted slot is cleared. This is a hard, irreversible,
// whole-store wipe.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Clear(l.slot); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	l.state = models.NewSnapshot()
	return nil
}
