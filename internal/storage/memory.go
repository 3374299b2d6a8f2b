package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

// MemoryStore is an in-memory Store, used in tests. It round-trips the
// snapshot through JSON so it exercises the same encoding path as the real
// store.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed replaces the raw stored bytes, bypassing encoding. Lets tests stage
// malformed data.
func (s *MemoryStore) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// Load decodes the stored snapshot, or returns an empty one when nothing
// usable is stored.
func (s *MemoryStore) Load(ctx context.Context) (*ledger.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.data) == 0 {
		return ledger.NewSnapshot(), nil
	}

	snap := &ledger.Snapshot{}
	if err := json.Unmarshal(s.data, snap); err != nil {
		slog.Warn("stored snapshot is malformed, starting empty", "error", err)
		return ledger.NewSnapshot(), nil
	}
	snap.Normalize()

	return snap, nil
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(ctx context.Context, snap *ledger.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data

	return nil
}
