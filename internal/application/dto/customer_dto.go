package dto

import "github.com/jhoicas/rocketstore-api/internal/domain/entity"

// CreateCustomerRequest body para POST /api/customers.
// Address y VatNumber son opcionales: nil significa "no informado".
type CreateCustomerRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Address   *string `json:"address,omitempty"`
	VatNumber *string `json:"vat_number,omitempty" validate:"omitempty,vatnumber"`
}

// CustomerSummary proyección para listados.
type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerDetail proyección para GET /api/customers/:id. Location se resuelve en lectura.
type CustomerDetail struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Address   *string          `json:"address"`
	VatNumber *string          `json:"vat_number"`
	Location  *entity.Location `json:"location"`
}
