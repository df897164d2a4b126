package customers

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rocketstore-api/internal/application/dto"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
)

// newCustomer mapea el modelo de escritura al registro y asigna el ID.
func newCustomer(in dto.CreateCustomerRequest, now time.Time) *entity.Customer {
	return &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		VatNumber: in.VatNumber,
		CreatedAt: now,
	}
}

func toCustomerSummary(c *entity.Customer) dto.CustomerSummary {
	return dto.CustomerSummary{ID: c.ID, Name: c.Name, Email: c.Email}
}

func toCustomerDetail(c *entity.Customer) *dto.CustomerDetail {
	return &dto.CustomerDetail{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Address:   c.Address,
		VatNumber: c.VatNumber,
	}
}
