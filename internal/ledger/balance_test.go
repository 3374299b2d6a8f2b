package ledger

import (
	"testing"
	"time"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int64) *int64       { return &i }

func sumBalances(balances map[string]int64) int64 {
	var sum int64
	for _, amount := range balances {
		sum += amount
	}
	return sum
}

func TestComputeBalances(t *testing.T) {
	date := NewDate(2026, time.March, 2)

	tests := []struct {
		name         string
		people       []Person
		orders       []Order
		settlements  []Settlement
		validateFunc func(t *testing.T, balances map[string]int64)
	}{
		{
			name: "individual order debits orderer and credits payer",
			people: []Person{
				{ID: "alice", Name: "Alice"},
				{ID: "bob", Name: "Bob"},
			},
			orders: []Order{
				{ID: "o1", Kind: OrderKindIndividual, PersonID: "alice", PayerID: "bob", Date: date, Price: 40000},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["alice"] != -40000 {
					t.Errorf("alice = %d, want -40000", balances["alice"])
				}
				if balances["bob"] != 40000 {
					t.Errorf("bob = %d, want 40000", balances["bob"])
				}
			},
		},
		{
			name: "settlement moves money back",
			people: []Person{
				{ID: "alice"}, {ID: "bob"},
			},
			orders: []Order{
				{ID: "o1", Kind: OrderKindIndividual, PersonID: "alice", PayerID: "bob", Date: date, Price: 40000, SettledAmount: 40000},
			},
			settlements: []Settlement{
				{ID: "s1", FromPersonID: "alice", ToPersonID: "bob", Amount: 40000, Date: date},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["alice"] != 0 || balances["bob"] != 0 {
					t.Errorf("got alice=%d bob=%d, want both 0 after full settlement", balances["alice"], balances["bob"])
				}
			},
		},
		{
			name: "team order splits evenly with remainder up front",
			people: []Person{
				{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "payer"},
			},
			orders: []Order{
				{
					ID: "o1", Kind: OrderKindTeam, PersonID: "a", PayerID: "payer",
					Date: date, Price: 100, TeamMembers: []string{"a", "b", "c"},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["payer"] != 100 {
					t.Errorf("payer = %d, want 100", balances["payer"])
				}
				if balances["a"] != -34 || balances["b"] != -33 || balances["c"] != -33 {
					t.Errorf("members = %d/%d/%d, want -34/-33/-33", balances["a"], balances["b"], balances["c"])
				}
			},
		},
		{
			name: "payer who is also a member nets price minus own share",
			people: []Person{
				{ID: "a"}, {ID: "b"}, {ID: "c"},
			},
			orders: []Order{
				{
					ID: "o1", Kind: OrderKindTeam, PersonID: "a", PayerID: "a",
					Date: date, Price: 90, TeamMembers: []string{"a", "b", "c"},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["a"] != 60 {
					t.Errorf("a = %d, want 60", balances["a"])
				}
				if balances["b"] != -30 || balances["c"] != -30 {
					t.Errorf("b/c = %d/%d, want -30/-30", balances["b"], balances["c"])
				}
			},
		},
		{
			name: "team order with percentage shares",
			people: []Person{
				{ID: "a"}, {ID: "b"}, {ID: "payer"},
			},
			orders: []Order{
				{
					ID: "o1", Kind: OrderKindTeam, PersonID: "a", PayerID: "payer",
					Date: date, Price: 1000, TeamMembers: []string{"a", "b"},
					SplitType: split.TypePercentage,
					Shares: []split.Share{
						{PersonID: "a", Percentage: floatPtr(70)},
						{PersonID: "b", Percentage: floatPtr(30)},
					},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["a"] != -700 || balances["b"] != -300 {
					t.Errorf("a/b = %d/%d, want -700/-300", balances["a"], balances["b"])
				}
				if balances["payer"] != 1000 {
					t.Errorf("payer = %d, want 1000", balances["payer"])
				}
			},
		},
		{
			name: "partially settled team order splits only the unsettled part",
			people: []Person{
				{ID: "a"}, {ID: "b"}, {ID: "payer"},
			},
			orders: []Order{
				{
					ID: "o1", Kind: OrderKindTeam, PersonID: "a", PayerID: "payer",
					Date: date, Price: 100, SettledAmount: 40, TeamMembers: []string{"a", "b"},
				},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["payer"] != 60 {
					t.Errorf("payer = %d, want 60", balances["payer"])
				}
				if balances["a"] != -30 || balances["b"] != -30 {
					t.Errorf("a/b = %d/%d, want -30/-30", balances["a"], balances["b"])
				}
			},
		},
		{
			name: "dangling reference still balances",
			people: []Person{
				{ID: "bob"},
			},
			orders: []Order{
				{ID: "o1", Kind: OrderKindIndividual, PersonID: "ghost", PayerID: "bob", Date: date, Price: 500},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if balances["bob"] != 500 {
					t.Errorf("bob = %d, want 500", balances["bob"])
				}
				if balances["ghost"] != -500 {
					t.Errorf("ghost = %d, want -500", balances["ghost"])
				}
			},
		},
		{
			name: "people with no history stay at zero",
			people: []Person{
				{ID: "idle"},
			},
			validateFunc: func(t *testing.T, balances map[string]int64) {
				if amount, ok := balances["idle"]; !ok || amount != 0 {
					t.Errorf("idle = %d (present=%v), want 0 entry", amount, ok)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := ComputeBalances(tt.people, tt.orders, tt.settlements)
			if sum := sumBalances(balances); sum != 0 {
				t.Errorf("balances sum to %d, want 0", sum)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, balances)
			}
		})
	}
}

func TestBalancesSortedRecords(t *testing.T) {
	date := NewDate(2026, time.March, 2)
	people := []Person{{ID: "b"}, {ID: "a"}}
	orders := []Order{
		{ID: "o1", Kind: OrderKindIndividual, PersonID: "a", PayerID: "b", Date: date, Price: 10},
	}

	balances := Balances(people, orders, nil)
	if len(balances) != 2 {
		t.Fatalf("got %d records, want 2", len(balances))
	}
	if balances[0].PersonID != "a" || balances[1].PersonID != "b" {
		t.Errorf("records not sorted by person id: %v", balances)
	}
	if balances[0].Amount != -10 || balances[1].Amount != 10 {
		t.Errorf("amounts = %d/%d, want -10/10", balances[0].Amount, balances[1].Amount)
	}
}
