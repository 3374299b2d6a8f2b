package ledger

import "github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"

// Snapshot is the full data set and the unit of persistence. Mutations are
// copy-on-write: the services clone the current snapshot, edit the clone and
// hand it back to the storage layer.
type Snapshot struct {
	People      []Person     `json:"people"`
	Orders      []Order      `json:"orders"`
	Settlements []Settlement `json:"settlements"`
}

// NewSnapshot returns an empty snapshot with non-nil collections so an export
// always carries the three arrays.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		People:      []Person{},
		Orders:      []Order{},
		Settlements: []Settlement{},
	}
}

// Normalize replaces nil collections with empty ones.
func (s *Snapshot) Normalize() {
	if s.People == nil {
		s.People = []Person{}
	}
	if s.Orders == nil {
		s.Orders = []Order{}
	}
	if s.Settlements == nil {
		s.Settlements = []Settlement{}
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	clone := &Snapshot{
		People:      make([]Person, len(s.People)),
		Orders:      make([]Order, len(s.Orders)),
		Settlements: make([]Settlement, len(s.Settlements)),
	}
	copy(clone.People, s.People)
	copy(clone.Settlements, s.Settlements)
	for i, o := range s.Orders {
		clone.Orders[i] = o.clone()
	}
	return clone
}

// FindPerson returns the person with the given id, or nil.
func (s *Snapshot) FindPerson(id string) *Person {
	for i := range s.People {
		if s.People[i].ID == id {
			return &s.People[i]
		}
	}
	return nil
}

// DefaultPayer returns the person flagged as default payer, or nil.
func (s *Snapshot) DefaultPayer() *Person {
	for i := range s.People {
		if s.People[i].IsDefaultPayer {
			return &s.People[i]
		}
	}
	return nil
}

func (o Order) clone() Order {
	clone := o
	if o.TeamMembers != nil {
		clone.TeamMembers = append([]string(nil), o.TeamMembers...)
	}
	if o.Shares != nil {
		clone.Shares = append([]split.Share(nil), o.Shares...)
	}
	return clone
}
