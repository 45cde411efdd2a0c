// Package testutil provides test helpers for setting up blob stores, creating
// ledger fixtures, and making assertions.
package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"tanzine/internal/blob"
	"tanzine/internal/ledger"
)

// TestSlot is the blob slot name all test ledgers persist to.
const TestSlot = "test-finance-storage"

// SetupTestStore creates a SQLite blob store in a per-test temp directory.
func SetupTestStore(t *testing.T) *blob.SQLiteStore {
	t.Helper()

	store, err := blob.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test blob store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test blob store: %v", err)
		}
	})
	return store
}

// SetupTestLedger creates a ledger backed by a fresh SQLite blob store.
func SetupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	l, err := ledger.New(SetupTestStore(t), TestSlot)
	if err != nil {
		t.Fatalf("failed to create test ledger: %v", err)
	}
	return l
}

// FlakyStore wraps a blob.Store and fails writes on demand, for exercising
// the persistence-failure path.
type FlakyStore struct {
	Inner    blob.Store
	FailSave bool
}

var errInjected = errors.New("injected save failure")

func (s *FlakyStore) Load(slot string) ([]byte, error) { return s.Inner.Load(slot) }

func (s *FlakyStore) Save(slot string, data []byte) error {
	if s.FailSave {
		return errInjected
	}
	return s.Inner.Save(slot, data)
}

func (s *FlakyStore) Clear(slot string) error { return s.Inner.Clear(slot) }
