package split

import "github.com/shopspring/decimal"

// ExactStrategy divides the total in proportion to per-member amounts. When
// the total equals the sum of the amounts each member owes exactly what was
// specified; for a smaller total (an order partly discharged by settlements)
// the amounts act as weights and every member's debit scales down.
type ExactStrategy struct{}

// Type returns the split type identifier.
func (s *ExactStrategy) Type() Type {
	return TypeExact
}

// Validate checks that every member carries a non-negative amount and that
// the amounts sum to a positive total.
func (s *ExactStrategy) Validate(total int64, shares []Share) error {
	if len(shares) == 0 {
		return ErrNoMembers
	}
	if total < 0 {
		return ErrNegativeAmount
	}

	var sum int64
	for _, share := range shares {
		if share.Amount == nil {
			return ErrMissingExactAmount
		}
		if *share.Amount < 0 {
			return ErrNegativeAmount
		}
		sum += *share.Amount
	}
	if sum <= 0 {
		return ErrZeroExactTotal
	}

	return nil
}

// Distribute allocates total in proportion to the specified amounts, floored,
// with the remainder spread over the earliest members.
func (s *ExactStrategy) Distribute(total int64, shares []Share) ([]Allocation, error) {
	if err := s.Validate(total, shares); err != nil {
		return nil, err
	}

	var weightSum int64
	for _, share := range shares {
		weightSum += *share.Amount
	}

	// Fast path: the total matches the declared amounts, use them as-is.
	if weightSum == total {
		allocs := make([]Allocation, len(shares))
		for i, share := range shares {
			allocs[i] = Allocation{PersonID: share.PersonID, Amount: *share.Amount}
		}
		return allocs, nil
	}

	totalDec := decimal.NewFromInt(total)
	weightSumDec := decimal.NewFromInt(weightSum)

	var distributed int64
	allocs := make([]Allocation, len(shares))
	for i, share := range shares {
		amount := totalDec.
			Mul(decimal.NewFromInt(*share.Amount)).
			Div(weightSumDec).
			Floor().
			IntPart()
		allocs[i] = Allocation{PersonID: share.PersonID, Amount: amount}
		distributed += amount
	}
	spreadRemainder(allocs, total-distributed)

	return allocs, nil
}
