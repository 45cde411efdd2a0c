// Package blob implements the ledger's persistence collaborator: a key-value
// store holding the serialized full snapshot under a single named slot. The
// ledger writes the whole blob after every mutation and reads it once at
// startup; it never depends on the storage schema.
package blob

// Store is the contract the ledger persists through.
type Store interface {
	// Load returns the blob stored under the slot, or (nil, nil) when the
	// slot is empty.
	Load(slot string) ([]byte, error)

	// Save replaces the blob stored under the slot.
	Save(slot string, data []byte) error

	// Clear removes the slot entirely. Clearing an empty slot is a no-op.
	Clear(slot string) error
}
