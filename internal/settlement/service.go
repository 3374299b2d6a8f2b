package settlement

import (
	"context"
	"errors"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/storage"
)

// Common errors
var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrPersonNotFound     = errors.New("person not found")
	ErrCannotSettleSelf   = errors.New("cannot record a settlement with yourself")
	ErrNonPositiveAmount  = errors.New("settlement amount must be positive")
)

// Service handles settlement business logic
type Service struct {
	keeper *storage.Keeper
}

// NewService creates a new settlement service with the snapshot keeper injected
func NewService(keeper *storage.Keeper) *Service {
	return &Service{keeper: keeper}
}

// Create records a payment and allocates it against the sender's outstanding
// orders toward the receiver, oldest first. The updated orders and the new
// settlement land in the same snapshot so a half-written allocation can never
// be observed. Whatever portion matched no known debt is reported back as an
// unallocated advance.
func (s *Service) Create(ctx context.Context, req *CreateSettlementRequest) (*ledger.Settlement, int64, error) {
	if req.FromPersonID == req.ToPersonID {
		return nil, 0, ErrCannotSettleSelf
	}
	if req.Amount <= 0 {
		return nil, 0, ErrNonPositiveAmount
	}
	date, err := ledger.ParseDate(req.Date)
	if err != nil {
		return nil, 0, err
	}

	st := ledger.Settlement{
		ID:           ledger.NewID(),
		FromPersonID: req.FromPersonID,
		ToPersonID:   req.ToPersonID,
		Amount:       req.Amount,
		Date:         date,
		Note:         req.Note,
	}

	var remaining int64
	err = s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		if snap.FindPerson(st.FromPersonID) == nil || snap.FindPerson(st.ToPersonID) == nil {
			return ErrPersonNotFound
		}
		snap.Orders, remaining = ledger.ApplySettlement(snap.Orders, st)
		snap.Settlements = append(snap.Settlements, st)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &st, remaining, nil
}

// List returns all settlements.
func (s *Service) List(ctx context.Context) []ledger.Settlement {
	var settlements []ledger.Settlement
	s.keeper.View(func(snap *ledger.Snapshot) {
		settlements = append([]ledger.Settlement(nil), snap.Settlements...)
	})
	return settlements
}

// Delete removes a settlement record. Settled amounts already allocated into
// orders are left as they are; the record of the payment disappears but the
// discharge it bought stays on the orders.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		for i, st := range snap.Settlements {
			if st.ID == id {
				snap.Settlements = append(snap.Settlements[:i], snap.Settlements[i+1:]...)
				return nil
			}
		}
		return ErrSettlementNotFound
	})
}
