package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

// Keeper owns the authoritative in-memory snapshot and coordinates mutation
// and persistence around it. Every accepted mutation produces a fresh
// snapshot (copy-on-write) which is then saved best-effort: a failed save is
// logged and the in-memory state stays authoritative for the rest of the
// session. The lock exists because the HTTP layer is concurrent even though
// the domain itself is single-writer.
type Keeper struct {
	mu    sync.RWMutex
	store Store
	snap  *ledger.Snapshot
}

// NewKeeper loads the stored snapshot and wraps it. A load failure is logged
// and the session starts from an empty snapshot.
func NewKeeper(ctx context.Context, store Store) *Keeper {
	snap, err := store.Load(ctx)
	if err != nil {
		slog.Warn("loading snapshot failed, starting empty", "error", err)
		snap = ledger.NewSnapshot()
	}
	return &Keeper{store: store, snap: snap}
}

// View calls fn with the current snapshot for reading. fn must not mutate or
// retain the snapshot.
func (k *Keeper) View(fn func(snap *ledger.Snapshot)) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	fn(k.snap)
}

// Update clones the current snapshot, applies fn to the clone, and on success
// installs it as the new current snapshot and saves it. When fn returns an
// error nothing changes.
func (k *Keeper) Update(ctx context.Context, fn func(snap *ledger.Snapshot) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	next := k.snap.Clone()
	if err := fn(next); err != nil {
		return err
	}
	k.snap = next
	k.persist(ctx)

	return nil
}

// Replace installs an externally built snapshot (an accepted import) as the
// new current state and saves it.
func (k *Keeper) Replace(ctx context.Context, snap *ledger.Snapshot) {
	k.mu.Lock()
	defer k.mu.Unlock()

	snap.Normalize()
	k.snap = snap
	k.persist(ctx)
}

func (k *Keeper) persist(ctx context.Context) {
	if err := k.store.Save(ctx, k.snap); err != nil {
		slog.Warn("saving snapshot failed, in-memory state stays authoritative", "error", err)
	}
}
