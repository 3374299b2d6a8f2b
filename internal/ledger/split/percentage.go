package split

import "github.com/shopspring/decimal"

// PercentageStrategy divides the total based on each member's percentage.
type PercentageStrategy struct{}

// Type returns the split type identifier.
func (s *PercentageStrategy) Type() Type {
	return TypePercentage
}

// Validate checks that every member carries a percentage and that the
// percentages sum to 100.
func (s *PercentageStrategy) Validate(total int64, shares []Share) error {
	if len(shares) == 0 {
		return ErrNoMembers
	}
	if total < 0 {
		return ErrNegativeAmount
	}

	var sum float64
	for _, share := range shares {
		if share.Percentage == nil {
			return ErrMissingPercentage
		}
		if *share.Percentage < 0 || *share.Percentage > 100 {
			return ErrPercentageOutOfRange
		}
		sum += *share.Percentage
	}
	if !percentagesSumTo100(sum) {
		return ErrInvalidPercentages
	}

	return nil
}

// Distribute floors each member's percentage of the total, computed in fixed
// point to keep float error out of money amounts, then spreads the remainder
// so the allocations sum to total exactly.
func (s *PercentageStrategy) Distribute(total int64, shares []Share) ([]Allocation, error) {
	if err := s.Validate(total, shares); err != nil {
		return nil, err
	}

	totalDec := decimal.NewFromInt(total)
	hundred := decimal.NewFromInt(100)

	var distributed int64
	allocs := make([]Allocation, len(shares))
	for i, share := range shares {
		amount := totalDec.
			Mul(decimal.NewFromFloat(*share.Percentage)).
			Div(hundred).
			Floor().
			IntPart()
		allocs[i] = Allocation{PersonID: share.PersonID, Amount: amount}
		distributed += amount
	}
	spreadRemainder(allocs, total-distributed)

	return allocs, nil
}
