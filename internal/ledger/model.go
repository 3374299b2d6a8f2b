// Package ledger holds the lunch-tab domain model and the pure functions that
// derive balances and allocate settlement payments. Nothing in this package
// performs I/O or validates references; callers own data integrity and a
// dangling person id simply contributes to a balance key nobody displays.
package ledger

import (
	"github.com/google/uuid"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
)

// Gender of a person, used by the presentation layer to pick an avatar.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Person is a member of the lunch group.
type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	// IsDefaultPayer marks the person pre-selected as payer in order entry.
	// At most one person holds the flag; the person service enforces this.
	IsDefaultPayer bool `json:"is_default_payer"`
}

// OrderKind tags an order as individual or team so the two shapes cannot be
// confused through optional fields.
type OrderKind string

const (
	OrderKindIndividual OrderKind = "individual"
	OrderKindTeam       OrderKind = "team"
)

// Order is a single lunch order. Individual orders charge PersonID; team
// orders charge every id in TeamMembers per the order's split type, EVEN when
// unset. Price is in whole currency units. SettledAmount only grows and never
// exceeds Price.
type Order struct {
	ID            string        `json:"id"`
	PersonID      string        `json:"person_id"`
	Date          Date          `json:"date"`
	Price         int64         `json:"price"`
	PayerID       string        `json:"payer_id"`
	Note          string        `json:"note,omitempty"`
	Kind          OrderKind     `json:"kind"`
	TeamMembers   []string      `json:"team_members,omitempty"`
	SplitType     split.Type    `json:"split_type,omitempty"`
	Shares        []split.Share `json:"shares,omitempty"`
	SettledAmount int64         `json:"settled_amount"`
}

// IsTeam reports whether the order is a team order with members to charge.
func (o Order) IsTeam() bool {
	return o.Kind == OrderKindTeam && len(o.TeamMembers) > 0
}

// UnsettledAmount is the portion of the price not yet covered by settlements.
func (o Order) UnsettledAmount() int64 {
	unsettled := o.Price - o.SettledAmount
	if unsettled < 0 {
		return 0
	}
	return unsettled
}

// Settlement is a recorded payment from one person to another. Immutable once
// created, except for deletion.
type Settlement struct {
	ID           string `json:"id"`
	FromPersonID string `json:"from_person_id"`
	ToPersonID   string `json:"to_person_id"`
	Amount       int64  `json:"amount"`
	Date         Date   `json:"date"`
	Note         string `json:"note,omitempty"`
}

// Balance is the derived net position of one person: positive means they are
// owed money, negative means they owe. Never persisted.
type Balance struct {
	PersonID string `json:"person_id"`
	Amount   int64  `json:"amount"`
}

// NewID returns a fresh entity id.
func NewID() string {
	return uuid.NewString()
}
