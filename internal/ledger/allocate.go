package ledger

import "sort"

// Status is the derived settlement state of an order.
type Status string

const (
	StatusUnsettled Status = "unsettled"
	StatusPartial   Status = "partial"
	StatusSettled   Status = "settled"
)

// SettlementStatus derives how much of the order has been paid off.
func (o Order) SettlementStatus() Status {
	switch {
	case o.SettledAmount == 0:
		return StatusUnsettled
	case o.SettledAmount >= o.Price:
		return StatusSettled
	default:
		return StatusPartial
	}
}

// ApplySettlement allocates a settlement payment against the orders it
// discharges, oldest debt first. An order is relevant when the settlement's
// sender is the ordering person (individual) or one of the team members
// (team), and the receiver is the order's payer. Relevant orders are walked
// in ascending date order, ties keeping collection order, each absorbing up
// to its unsettled amount.
//
// The input slice is not mutated. The second return value is the part of the
// payment that matched no outstanding debt; the caller decides how to treat
// it, typically as an advance.
func ApplySettlement(orders []Order, s Settlement) ([]Order, int64) {
	updated := make([]Order, len(orders))
	for i, o := range orders {
		updated[i] = o.clone()
	}

	var relevant []int
	for i, o := range updated {
		if coversDebt(o, s.FromPersonID, s.ToPersonID) {
			relevant = append(relevant, i)
		}
	}
	sort.SliceStable(relevant, func(a, b int) bool {
		return updated[relevant[a]].Date.Before(updated[relevant[b]].Date.Time)
	})

	remaining := s.Amount
	for _, idx := range relevant {
		if remaining <= 0 {
			break
		}
		o := &updated[idx]
		unsettled := o.UnsettledAmount()
		if unsettled == 0 {
			continue
		}
		paid := min(remaining, unsettled)
		o.SettledAmount += paid
		remaining -= paid
	}

	return updated, remaining
}

// coversDebt reports whether the order represents a debt from one person to
// another matching the settlement direction.
func coversDebt(o Order, from, to string) bool {
	if o.PayerID != to {
		return false
	}
	if o.PersonID == from {
		return true
	}
	if o.IsTeam() {
		for _, member := range o.TeamMembers {
			if member == from {
				return true
			}
		}
	}
	return false
}
