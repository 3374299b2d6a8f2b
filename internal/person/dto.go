package person

import "github.com/Katoo2706/lunch-byte-buddies/internal/ledger"

// CreatePersonRequest represents the request body for adding a person
type CreatePersonRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Gender         string `json:"gender" validate:"required,oneof=male female"`
	IsDefaultPayer bool   `json:"is_default_payer,omitempty"`
}

// UpdatePersonRequest represents the request body for editing a person
type UpdatePersonRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}

// PersonResponse represents the response for a single person
type PersonResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	IsDefaultPayer bool   `json:"is_default_payer"`
}

// BalanceResponse represents one person's derived net balance
type BalanceResponse struct {
	PersonID string `json:"person_id"`
	Amount   int64  `json:"amount"`
}

// ToResponse converts a ledger.Person to a PersonResponse DTO
func ToResponse(p ledger.Person) *PersonResponse {
	return &PersonResponse{
		ID:             p.ID,
		Name:           p.Name,
		Gender:         string(p.Gender),
		IsDefaultPayer: p.IsDefaultPayer,
	}
}
