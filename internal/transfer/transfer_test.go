package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

func sampleSnapshot() *ledger.Snapshot {
	snap := ledger.NewSnapshot()
	snap.People = []ledger.Person{
		{ID: "alice", Name: "Alice", Gender: ledger.GenderFemale, IsDefaultPayer: true},
		{ID: "bob", Name: "Bob", Gender: ledger.GenderMale},
	}
	snap.Orders = []ledger.Order{
		{
			ID: "o1", Kind: ledger.OrderKindIndividual, PersonID: "alice", PayerID: "bob",
			Date: ledger.NewDate(2026, time.March, 2), Price: 40000, SettledAmount: 15000,
			Note: "pho",
		},
		{
			ID: "o2", Kind: ledger.OrderKindTeam, PersonID: "alice", PayerID: "alice",
			Date: ledger.NewDate(2026, time.March, 3), Price: 90000,
			TeamMembers: []string{"alice", "bob"},
		},
	}
	snap.Settlements = []ledger.Settlement{
		{ID: "s1", FromPersonID: "alice", ToPersonID: "bob", Amount: 15000, Date: ledger.NewDate(2026, time.March, 4)},
	}
	return snap
}

func TestExportImportRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	text, err := Export(original)
	require.NoError(t, err)

	imported, err := Import(text)
	require.NoError(t, err)

	assert.Equal(t, original, imported)
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty object", `{}`},
		{"not json", `{"people": [`},
		{"missing settlements", `{"people": [], "orders": []}`},
		{"non-array people", `{"people": {}, "orders": [], "settlements": []}`},
		{"non-array orders", `{"people": [], "orders": 3, "settlements": []}`},
		{"top-level array", `[]`},
		{"top-level string", `"snapshot"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Import(tt.text)
			require.Error(t, err)
			assert.Nil(t, snap)
		})
	}
}

func TestImportNormalizesMinimalPayload(t *testing.T) {
	snap, err := Import(`{"people": [], "orders": [], "settlements": []}`)
	require.NoError(t, err)
	assert.NotNil(t, snap.People)
	assert.NotNil(t, snap.Orders)
	assert.NotNil(t, snap.Settlements)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.March, 2, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "lunch-data-2026-03-02.json", Filename(now))
}
