package ledger

import (
	"sort"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
)

// ComputeBalances derives the net balance per person from the full order and
// settlement history. Only the unsettled portion of each order moves money:
// once a settlement has been allocated into an order's settled amount, that
// slice of the debt is already reflected in the settlement entries.
//
// Individual orders debit the ordering person and credit the payer. Team
// orders credit the payer the full unsettled amount and debit each member its
// share per the order's split strategy; the shares are integral and sum to
// the unsettled amount exactly, so the balances always sum to zero. The payer
// is not excluded from the member list, so a payer who also ate nets the
// amount minus their own share.
func ComputeBalances(people []Person, orders []Order, settlements []Settlement) map[string]int64 {
	balances := make(map[string]int64, len(people))
	for _, p := range people {
		balances[p.ID] = 0
	}

	for _, o := range orders {
		unsettled := o.UnsettledAmount()
		if unsettled == 0 {
			continue
		}

		if o.IsTeam() {
			balances[o.PayerID] += unsettled
			for _, alloc := range memberDebits(o, unsettled) {
				balances[alloc.PersonID] -= alloc.Amount
			}
			continue
		}

		balances[o.PersonID] -= unsettled
		balances[o.PayerID] += unsettled
	}

	for _, s := range settlements {
		balances[s.FromPersonID] -= s.Amount
		balances[s.ToPersonID] += s.Amount
	}

	return balances
}

// Balances is ComputeBalances flattened into records, sorted by person id for
// deterministic output. The presentation layer re-sorts for display.
func Balances(people []Person, orders []Order, settlements []Settlement) []Balance {
	computed := ComputeBalances(people, orders, settlements)

	balances := make([]Balance, 0, len(computed))
	for personID, amount := range computed {
		balances = append(balances, Balance{PersonID: personID, Amount: amount})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].PersonID < balances[j].PersonID
	})

	return balances
}

var splitFactory = split.NewFactory()

// memberDebits distributes total across the order's team members. Malformed
// share data falls back to an even split rather than dropping the order from
// the books; an even split over a non-empty member list cannot fail.
func memberDebits(o Order, total int64) []split.Allocation {
	shares := o.Shares
	if len(shares) != len(o.TeamMembers) {
		shares = split.EvenShares(o.TeamMembers)
	}

	strategy, err := splitFactory.Create(o.SplitType)
	if err == nil {
		if allocs, err := strategy.Distribute(total, shares); err == nil {
			return allocs
		}
	}

	allocs, _ := (&split.EvenStrategy{}).Distribute(total, split.EvenShares(o.TeamMembers))
	return allocs
}
