package split

// EvenStrategy divides the total equally among all members.
type EvenStrategy struct{}

// Type returns the split type identifier.
func (s *EvenStrategy) Type() Type {
	return TypeEven
}

// Validate checks if the inputs are valid for an even split.
func (s *EvenStrategy) Validate(total int64, shares []Share) error {
	if len(shares) == 0 {
		return ErrNoMembers
	}
	if total < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Distribute gives each member total/n, with the integer remainder spread one
// unit each over the earliest members so the allocations sum to total exactly.
func (s *EvenStrategy) Distribute(total int64, shares []Share) ([]Allocation, error) {
	if err := s.Validate(total, shares); err != nil {
		return nil, err
	}

	n := int64(len(shares))
	base := total / n

	allocs := make([]Allocation, len(shares))
	for i, share := range shares {
		allocs[i] = Allocation{PersonID: share.PersonID, Amount: base}
	}
	spreadRemainder(allocs, total-base*n)

	return allocs, nil
}
