// Package storage persists the ledger snapshot. The whole data set is saved
// and loaded as one JSON document under a single string key, and the Keeper
// layers copy-on-write mutation and best-effort persistence on top of it.
package storage

import (
	"context"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

// storageKey is the slot the snapshot lives under.
const storageKey = "lunch-app-data"

// Store is a string-keyed snapshot store.
type Store interface {
	// Load returns the stored snapshot. When nothing usable is stored
	// (no data, or data that fails to decode) it returns an empty
	// snapshot, not an error; a hosed local store is never fatal.
	Load(ctx context.Context) (*ledger.Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *ledger.Snapshot) error
}
