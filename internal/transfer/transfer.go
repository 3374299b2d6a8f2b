// Package transfer moves the full snapshot in and out of the app as JSON
// text, for backup and for carrying the data to another machine.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
)

// ErrInvalidSnapshot rejects import payloads that are not a snapshot object
// with the three required arrays.
var ErrInvalidSnapshot = errors.New("import must contain people, orders and settlements arrays")

// Export renders the snapshot as pretty-printed JSON.
func Export(snap *ledger.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

// Import parses and validates exported text. The payload must be a JSON
// object carrying array-typed people, orders and settlements fields; anything
// else fails without producing a snapshot, so the caller's existing state is
// untouched.
func Import(text string) (*ledger.Snapshot, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse import: %w", err)
	}

	for _, field := range []string{"people", "orders", "settlements"} {
		raw, ok := probe[field]
		if !ok {
			return nil, ErrInvalidSnapshot
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, ErrInvalidSnapshot
		}
	}

	snap := &ledger.Snapshot{}
	if err := json.Unmarshal([]byte(text), snap); err != nil {
		return nil, fmt.Errorf("failed to decode import: %w", err)
	}
	snap.Normalize()

	return snap, nil
}

// Filename builds the timestamped name for a downloaded export.
func Filename(now time.Time) string {
	return fmt.Sprintf("lunch-data-%s.json", now.Format("2006-01-02"))
}
