package split

import (
	"errors"
	"fmt"
	"math"
)

// Type identifies how a team order's cost is allocated across its members.
type Type string

const (
	TypeEven       Type = "EVEN"
	TypePercentage Type = "PERCENTAGE"
	TypeExact      Type = "EXACT"
)

// Share describes one member's part of a team order. Percentage is used by
// PERCENTAGE splits and Amount by EXACT splits; EVEN splits need neither.
type Share struct {
	PersonID   string   `json:"person_id"`
	Percentage *float64 `json:"percentage,omitempty"`
	Amount     *int64   `json:"amount,omitempty"`
}

// Allocation is the computed debit for a single member.
type Allocation struct {
	PersonID string `json:"person_id"`
	Amount   int64  `json:"amount"`
}

// Strategy is the interface all split strategies implement.
type Strategy interface {
	// Distribute divides total across the shares. The returned allocations
	// always sum to total exactly, one allocation per share in input order.
	Distribute(total int64, shares []Share) ([]Allocation, error)

	// Type returns the type identifier for this strategy.
	Type() Type

	// Validate checks if the inputs are valid for this strategy.
	Validate(total int64, shares []Share) error
}

// Factory creates split strategies based on the requested type.
type Factory struct{}

// NewFactory creates a new factory instance.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given type. The empty
// type resolves to EVEN, which is the default for team orders.
func (f *Factory) Create(t Type) (Strategy, error) {
	switch t {
	case TypeEven, "":
		return &EvenStrategy{}, nil
	case TypePercentage:
		return &PercentageStrategy{}, nil
	case TypeExact:
		return &ExactStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", t)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests).
func (f *Factory) CreateFromString(t string) (Strategy, error) {
	return f.Create(Type(t))
}

var (
	ErrNoMembers            = errors.New("at least one member is required")
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrMissingPercentage    = errors.New("percentage value required for all members")
	ErrInvalidPercentages   = errors.New("percentages must sum to 100")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrMissingExactAmount   = errors.New("exact amount required for all members")
	ErrZeroExactTotal       = errors.New("exact amounts must sum to a positive total")
)

// EvenShares builds plain shares from a list of member ids, for callers that
// only track membership.
func EvenShares(personIDs []string) []Share {
	shares := make([]Share, len(personIDs))
	for i, id := range personIDs {
		shares[i] = Share{PersonID: id}
	}
	return shares
}

// percentagesSumTo100 allows for small floating point errors (99.99 to 100.01).
func percentagesSumTo100(total float64) bool {
	return math.Abs(total-100) <= 0.01
}

// spreadRemainder adjusts allocations in place so they sum to the intended
// total, one unit at a time starting from the front of the list.
func spreadRemainder(allocs []Allocation, remainder int64) {
	for remainder != 0 && len(allocs) > 0 {
		progressed := false
		for i := range allocs {
			if remainder == 0 {
				break
			}
			if remainder > 0 {
				allocs[i].Amount++
				remainder--
				progressed = true
			} else if allocs[i].Amount > 0 {
				allocs[i].Amount--
				remainder++
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
}
