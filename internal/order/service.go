package order

import (
	"context"
	"errors"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
	"github.com/Katoo2706/lunch-byte-buddies/internal/storage"
)

// Common errors
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrPersonNotFound   = errors.New("person not found")
	ErrPayerRequired    = errors.New("payer is required and no default payer is set")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNoTeamMembers    = errors.New("team orders need at least one member")
	ErrSharesMismatch   = errors.New("shares must cover exactly the team members")
	ErrExactSharesTotal = errors.New("exact share amounts must sum to the order price")
)

// Service handles order business logic
type Service struct {
	keeper       *storage.Keeper
	splitFactory *split.Factory
}

// NewService creates a new order service with dependencies injected
func NewService(keeper *storage.Keeper, splitFactory *split.Factory) *Service {
	return &Service{
		keeper:       keeper,
		splitFactory: splitFactory,
	}
}

// Create records a lunch order. All person references are validated here so
// the balance engine never has to; an omitted payer falls back to the group's
// default payer and a team order without an explicit ordering person is
// attributed to its first member.
func (s *Service) Create(ctx context.Context, req *CreateOrderRequest) (*ledger.Order, error) {
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}
	date, err := ledger.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	kind := ledger.OrderKind(req.Kind)
	if kind == "" {
		if len(req.TeamMembers) > 0 {
			kind = ledger.OrderKindTeam
		} else {
			kind = ledger.OrderKindIndividual
		}
	}

	o := ledger.Order{
		ID:       ledger.NewID(),
		Kind:     kind,
		PersonID: req.PersonID,
		Date:     date,
		Price:    req.Price,
		PayerID:  req.PayerID,
		Note:     req.Note,
	}

	if kind == ledger.OrderKindTeam {
		if len(req.TeamMembers) == 0 {
			return nil, ErrNoTeamMembers
		}
		o.TeamMembers = req.TeamMembers
		if o.PersonID == "" {
			o.PersonID = req.TeamMembers[0]
		}
		o.SplitType = split.Type(req.SplitType)
		if o.SplitType == "" {
			o.SplitType = split.TypeEven
		}
		o.Shares, err = s.buildShares(&o, req.Shares)
		if err != nil {
			return nil, err
		}
	}

	err = s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		if o.PayerID == "" {
			payer := snap.DefaultPayer()
			if payer == nil {
				return ErrPayerRequired
			}
			o.PayerID = payer.ID
		}
		if snap.FindPerson(o.PayerID) == nil {
			return ErrPersonNotFound
		}
		if snap.FindPerson(o.PersonID) == nil {
			return ErrPersonNotFound
		}
		for _, member := range o.TeamMembers {
			if snap.FindPerson(member) == nil {
				return ErrPersonNotFound
			}
		}
		snap.Orders = append(snap.Orders, o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// List returns all orders, optionally only those on a given date.
func (s *Service) List(ctx context.Context, date *ledger.Date) []ledger.Order {
	var orders []ledger.Order
	s.keeper.View(func(snap *ledger.Snapshot) {
		for _, o := range snap.Orders {
			if date == nil || o.Date.Equal(date.Time) {
				orders = append(orders, o)
			}
		}
	})
	return orders
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		for i, o := range snap.Orders {
			if o.ID == id {
				snap.Orders = append(snap.Orders[:i], snap.Orders[i+1:]...)
				return nil
			}
		}
		return ErrOrderNotFound
	})
}

// buildShares validates the share inputs against the order's split type and
// member list. EVEN splits carry no shares; PERCENTAGE and EXACT need one
// share per member, and exact amounts must add up to the order price.
func (s *Service) buildShares(o *ledger.Order, inputs []ShareInput) ([]split.Share, error) {
	if o.SplitType == split.TypeEven {
		return nil, nil
	}

	if len(inputs) != len(o.TeamMembers) {
		return nil, ErrSharesMismatch
	}
	members := make(map[string]bool, len(o.TeamMembers))
	for _, m := range o.TeamMembers {
		members[m] = true
	}

	shares := make([]split.Share, len(inputs))
	var exactTotal int64
	for i, input := range inputs {
		if !members[input.PersonID] {
			return nil, ErrSharesMismatch
		}
		delete(members, input.PersonID) // each member gets exactly one share
		shares[i] = input.ToShare()
		if input.Amount != nil {
			exactTotal += *input.Amount
		}
	}

	strategy, err := s.splitFactory.Create(o.SplitType)
	if err != nil {
		return nil, err
	}
	if err := strategy.Validate(o.Price, shares); err != nil {
		return nil, err
	}
	if o.SplitType == split.TypeExact && exactTotal != o.Price {
		return nil, ErrExactSharesTotal
	}

	return shares, nil
}
