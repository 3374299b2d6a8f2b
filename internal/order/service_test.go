package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
	"github.com/Katoo2706/lunch-byte-buddies/internal/storage"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int64) *int64       { return &i }

type OrderServiceSuite struct {
	suite.Suite
	keeper  *storage.Keeper
	service *Service
	ctx     context.Context

	alice ledger.Person
	bob   ledger.Person
	carol ledger.Person
}

func (s *OrderServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.keeper = storage.NewKeeper(s.ctx, storage.NewMemoryStore())
	s.service = NewService(s.keeper, split.NewFactory())

	s.alice = ledger.Person{ID: ledger.NewID(), Name: "Alice", Gender: ledger.GenderFemale}
	s.bob = ledger.Person{ID: ledger.NewID(), Name: "Bob", Gender: ledger.GenderMale, IsDefaultPayer: true}
	s.carol = ledger.Person{ID: ledger.NewID(), Name: "Carol", Gender: ledger.GenderFemale}
	err := s.keeper.Update(s.ctx, func(snap *ledger.Snapshot) error {
		snap.People = []ledger.Person{s.alice, s.bob, s.carol}
		return nil
	})
	s.Require().NoError(err)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) TestCreateIndividual() {
	s.Run("records an order with explicit payer", func() {
		o, err := s.service.Create(s.ctx, &CreateOrderRequest{
			PersonID: s.alice.ID,
			Date:     "2026-03-02",
			Price:    40000,
			PayerID:  s.carol.ID,
			Note:     "bun cha",
		})
		s.Require().NoError(err)
		s.Equal(ledger.OrderKindIndividual, o.Kind)
		s.Equal(s.carol.ID, o.PayerID)
		s.Equal(ledger.StatusUnsettled, o.SettlementStatus())
	})

	s.Run("falls back to the default payer", func() {
		o, err := s.service.Create(s.ctx, &CreateOrderRequest{
			PersonID: s.alice.ID,
			Date:     "2026-03-02",
			Price:    35000,
		})
		s.Require().NoError(err)
		s.Equal(s.bob.ID, o.PayerID)
	})

	s.Run("rejects unknown person", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			PersonID: "ghost",
			Date:     "2026-03-02",
			Price:    1000,
		})
		s.Require().ErrorIs(err, ErrPersonNotFound)
	})

	s.Run("rejects bad date", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			PersonID: s.alice.ID,
			Date:     "02/03/2026",
			Price:    1000,
		})
		s.Require().ErrorIs(err, ledger.ErrInvalidDate)
	})

	s.Run("rejects negative price", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			PersonID: s.alice.ID,
			Date:     "2026-03-02",
			Price:    -1,
		})
		s.Require().ErrorIs(err, ErrNegativePrice)
	})
}

func (s *OrderServiceSuite) TestCreateTeam() {
	s.Run("defaults to even split and first member as orderer", func() {
		o, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:        "team",
			Date:        "2026-03-02",
			Price:       90000,
			PayerID:     s.bob.ID,
			TeamMembers: []string{s.alice.ID, s.carol.ID},
		})
		s.Require().NoError(err)
		s.Equal(ledger.OrderKindTeam, o.Kind)
		s.Equal(split.TypeEven, o.SplitType)
		s.Equal(s.alice.ID, o.PersonID)
	})

	s.Run("infers team kind from members", func() {
		o, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Date:        "2026-03-02",
			Price:       50000,
			TeamMembers: []string{s.alice.ID, s.bob.ID},
		})
		s.Require().NoError(err)
		s.Equal(ledger.OrderKindTeam, o.Kind)
	})

	s.Run("rejects a team order without members", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:  "team",
			Date:  "2026-03-02",
			Price: 50000,
		})
		s.Require().ErrorIs(err, ErrNoTeamMembers)
	})

	s.Run("rejects unknown team member", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:        "team",
			Date:        "2026-03-02",
			Price:       50000,
			TeamMembers: []string{s.alice.ID, "ghost"},
		})
		s.Require().ErrorIs(err, ErrPersonNotFound)
	})

	s.Run("accepts percentage shares", func() {
		o, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:        "team",
			Date:        "2026-03-02",
			Price:       100000,
			PayerID:     s.bob.ID,
			TeamMembers: []string{s.alice.ID, s.carol.ID},
			SplitType:   "PERCENTAGE",
			Shares: []ShareInput{
				{PersonID: s.alice.ID, Percentage: floatPtr(60)},
				{PersonID: s.carol.ID, Percentage: floatPtr(40)},
			},
		})
		s.Require().NoError(err)
		s.Len(o.Shares, 2)
	})

	s.Run("rejects percentages that do not sum to 100", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:        "team",
			Date:        "2026-03-02",
			Price:       100000,
			TeamMembers: []string{s.alice.ID, s.carol.ID},
			SplitType:   "PERCENTAGE",
			Shares: []ShareInput{
				{PersonID: s.alice.ID, Percentage: floatPtr(60)},
				{PersonID: s.carol.ID, Percentage: floatPtr(20)},
			},
		})
		s.Require().ErrorIs(err, split.ErrInvalidPercentages)
	})

	s.Run("rejects exact amounts that miss the price", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:        "team",
			Date:        "2026-03-02",
			Price:       100000,
			TeamMembers: []string{s.alice.ID, s.carol.ID},
			SplitType:   "EXACT",
			Shares: []ShareInput{
				{PersonID: s.alice.ID, Amount: intPtr(60000)},
				{PersonID: s.carol.ID, Amount: intPtr(30000)},
			},
		})
		s.Require().ErrorIs(err, ErrExactSharesTotal)
	})

	s.Run("rejects shares for non-members", func() {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			Kind:        "team",
			Date:        "2026-03-02",
			Price:       100000,
			TeamMembers: []string{s.alice.ID, s.carol.ID},
			SplitType:   "EXACT",
			Shares: []ShareInput{
				{PersonID: s.alice.ID, Amount: intPtr(50000)},
				{PersonID: s.bob.ID, Amount: intPtr(50000)},
			},
		})
		s.Require().ErrorIs(err, ErrSharesMismatch)
	})
}

func (s *OrderServiceSuite) TestListByDate() {
	for _, day := range []string{"2026-03-02", "2026-03-02", "2026-03-03"} {
		_, err := s.service.Create(s.ctx, &CreateOrderRequest{
			PersonID: s.alice.ID,
			Date:     day,
			Price:    1000,
		})
		s.Require().NoError(err)
	}

	s.Len(s.service.List(s.ctx, nil), 3)

	date := ledger.NewDate(2026, 3, 2)
	s.Len(s.service.List(s.ctx, &date), 2)
}

func (s *OrderServiceSuite) TestDelete() {
	o, err := s.service.Create(s.ctx, &CreateOrderRequest{
		PersonID: s.alice.ID,
		Date:     "2026-03-02",
		Price:    1000,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, o.ID))
	s.Empty(s.service.List(s.ctx, nil))

	s.Require().ErrorIs(s.service.Delete(s.ctx, o.ID), ErrOrderNotFound)
}
