package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lunch.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	snap := ledger.NewSnapshot()
	snap.People = append(snap.People, ledger.Person{ID: "p1", Name: "Alice", Gender: ledger.GenderFemale})
	snap.Orders = append(snap.Orders, ledger.Order{
		ID: "o1", Kind: ledger.OrderKindIndividual, PersonID: "p1", PayerID: "p1",
		Date: ledger.NewDate(2026, time.March, 2), Price: 40000,
	})
	require.NoError(t, store.Save(ctx, snap))

	// Overwrite, then read back through a fresh handle.
	snap.People[0].Name = "Alice B"
	require.NoError(t, store.Save(ctx, snap))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.People, 1)
	assert.Equal(t, "Alice B", loaded.People[0].Name)
	require.Len(t, loaded.Orders, 1)
	assert.Equal(t, "2026-03-02", loaded.Orders[0].Date.String())
	assert.Equal(t, int64(40000), loaded.Orders[0].Price)
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	defer store.Close()

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, snap.People)
	assert.Empty(t, snap.People)
	assert.Empty(t, snap.Orders)
	assert.Empty(t, snap.Settlements)
}
