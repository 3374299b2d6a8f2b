package settlement

import "github.com/Katoo2706/lunch-byte-buddies/internal/ledger"

// CreateSettlementRequest represents the request body for recording a payment
type CreateSettlementRequest struct {
	FromPersonID string `json:"from_person_id" validate:"required"`
	ToPersonID   string `json:"to_person_id" validate:"required"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required"`
	Note         string `json:"note,omitempty"`
}

// SettlementResponse represents the response for a single settlement
type SettlementResponse struct {
	ID           string `json:"id"`
	FromPersonID string `json:"from_person_id"`
	ToPersonID   string `json:"to_person_id"`
	Amount       int64  `json:"amount"`
	Date         string `json:"date"`
	Note         string `json:"note,omitempty"`
}

// CreateSettlementResponse pairs the recorded settlement with the part of the
// payment that matched no outstanding order, which the payee holds as an
// advance.
type CreateSettlementResponse struct {
	Settlement        *SettlementResponse `json:"settlement"`
	UnallocatedAmount int64               `json:"unallocated_amount"`
}

// ToResponse converts a ledger.Settlement to a SettlementResponse DTO
func ToResponse(s ledger.Settlement) *SettlementResponse {
	return &SettlementResponse{
		ID:           s.ID,
		FromPersonID: s.FromPersonID,
		ToPersonID:   s.ToPersonID,
		Amount:       s.Amount,
		Date:         s.Date.String(),
		Note:         s.Note,
	}
}
