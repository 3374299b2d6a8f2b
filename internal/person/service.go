package person

import (
	"context"
	"errors"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/storage"
)

// Common errors
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrNameRequired   = errors.New("name is required")
	ErrInvalidGender  = errors.New("gender must be male or female")
)

// Service handles person business logic
type Service struct {
	keeper *storage.Keeper
}

// NewService creates a new person service with the snapshot keeper injected
func NewService(keeper *storage.Keeper) *Service {
	return &Service{keeper: keeper}
}

// Create adds a new person. When the new person is flagged as default payer
// the flag is cleared on any previous holder, keeping it exclusive.
func (s *Service) Create(ctx context.Context, req *CreatePersonRequest) (*ledger.Person, error) {
	gender, err := parseGender(req.Gender)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	p := ledger.Person{
		ID:             ledger.NewID(),
		Name:           req.Name,
		Gender:         gender,
		IsDefaultPayer: req.IsDefaultPayer,
	}

	err = s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		if p.IsDefaultPayer {
			clearDefaultPayer(snap)
		}
		snap.People = append(snap.People, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// List returns all people.
func (s *Service) List(ctx context.Context) []ledger.Person {
	var people []ledger.Person
	s.keeper.View(func(snap *ledger.Snapshot) {
		people = append([]ledger.Person(nil), snap.People...)
	})
	return people
}

// Update edits a person's name or gender.
func (s *Service) Update(ctx context.Context, id string, req *UpdatePersonRequest) (*ledger.Person, error) {
	if req.Gender != nil {
		if _, err := parseGender(*req.Gender); err != nil {
			return nil, err
		}
	}
	if req.Name != nil && *req.Name == "" {
		return nil, ErrNameRequired
	}

	var updated ledger.Person
	err := s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		p := snap.FindPerson(id)
		if p == nil {
			return ErrPersonNotFound
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Gender != nil {
			p.Gender = ledger.Gender(*req.Gender)
		}
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes a person and cascades: orders where the person ordered or
// paid and settlements the person sent or received go with them. An id left
// behind inside a team-member list is tolerated; the balance engine treats it
// as a dangling reference.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		if snap.FindPerson(id) == nil {
			return ErrPersonNotFound
		}

		people := snap.People[:0]
		for _, p := range snap.People {
			if p.ID != id {
				people = append(people, p)
			}
		}
		snap.People = people

		orders := snap.Orders[:0]
		for _, o := range snap.Orders {
			if o.PersonID != id && o.PayerID != id {
				orders = append(orders, o)
			}
		}
		snap.Orders = orders

		settlements := snap.Settlements[:0]
		for _, st := range snap.Settlements {
			if st.FromPersonID != id && st.ToPersonID != id {
				settlements = append(settlements, st)
			}
		}
		snap.Settlements = settlements

		return nil
	})
}

// SetDefaultPayer flags the person as the default payer, atomically clearing
// the flag on whoever held it before.
func (s *Service) SetDefaultPayer(ctx context.Context, id string) (*ledger.Person, error) {
	var updated ledger.Person
	err := s.keeper.Update(ctx, func(snap *ledger.Snapshot) error {
		p := snap.FindPerson(id)
		if p == nil {
			return ErrPersonNotFound
		}
		clearDefaultPayer(snap)
		p.IsDefaultPayer = true
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Balances recomputes every person's net balance from scratch.
func (s *Service) Balances(ctx context.Context) []ledger.Balance {
	var balances []ledger.Balance
	s.keeper.View(func(snap *ledger.Snapshot) {
		balances = ledger.Balances(snap.People, snap.Orders, snap.Settlements)
	})
	return balances
}

func parseGender(g string) (ledger.Gender, error) {
	switch ledger.Gender(g) {
	case ledger.GenderMale, ledger.GenderFemale:
		return ledger.Gender(g), nil
	default:
		return "", ErrInvalidGender
	}
}

func clearDefaultPayer(snap *ledger.Snapshot) {
	for i := range snap.People {
		snap.People[i].IsDefaultPayer = false
	}
}
