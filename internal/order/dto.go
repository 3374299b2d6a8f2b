package order

import (
	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
)

// ShareInput is one member's part of a team order split
type ShareInput struct {
	PersonID   string   `json:"person_id" validate:"required"`
	Percentage *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount     *int64   `json:"amount,omitempty"`     // For EXACT split
}

// ToShare converts a ShareInput DTO to a split.Share
func (s ShareInput) ToShare() split.Share {
	return split.Share{
		PersonID:   s.PersonID,
		Percentage: s.Percentage,
		Amount:     s.Amount,
	}
}

// CreateOrderRequest represents the request body for recording an order.
// Individual orders need person_id; team orders need team_members and may
// carry a split type with per-member shares. An omitted payer_id falls back
// to the group's default payer.
type CreateOrderRequest struct {
	Kind        string       `json:"kind,omitempty" validate:"omitempty,oneof=individual team"`
	PersonID    string       `json:"person_id,omitempty"`
	Date        string       `json:"date" validate:"required"`
	Price       int64        `json:"price" validate:"gte=0"`
	PayerID     string       `json:"payer_id,omitempty"`
	Note        string       `json:"note,omitempty"`
	TeamMembers []string     `json:"team_members,omitempty"`
	SplitType   string       `json:"split_type,omitempty" validate:"omitempty,oneof=EVEN PERCENTAGE EXACT"`
	Shares      []ShareInput `json:"shares,omitempty"`
}

// OrderResponse represents the response for a single order
type OrderResponse struct {
	ID               string        `json:"id"`
	Kind             string        `json:"kind"`
	PersonID         string        `json:"person_id"`
	Date             string        `json:"date"`
	Price            int64         `json:"price"`
	PayerID          string        `json:"payer_id"`
	Note             string        `json:"note,omitempty"`
	TeamMembers      []string      `json:"team_members,omitempty"`
	SplitType        string        `json:"split_type,omitempty"`
	Shares           []split.Share `json:"shares,omitempty"`
	SettledAmount    int64         `json:"settled_amount"`
	UnsettledAmount  int64         `json:"unsettled_amount"`
	SettlementStatus string        `json:"settlement_status"`
}

// ToResponse converts a ledger.Order to an OrderResponse DTO
func ToResponse(o ledger.Order) *OrderResponse {
	return &OrderResponse{
		ID:               o.ID,
		Kind:             string(o.Kind),
		PersonID:         o.PersonID,
		Date:             o.Date.String(),
		Price:            o.Price,
		PayerID:          o.PayerID,
		Note:             o.Note,
		TeamMembers:      o.TeamMembers,
		SplitType:        string(o.SplitType),
		Shares:           o.Shares,
		SettledAmount:    o.SettledAmount,
		UnsettledAmount:  o.UnsettledAmount(),
		SettlementStatus: string(o.SettlementStatus()),
	}
}
