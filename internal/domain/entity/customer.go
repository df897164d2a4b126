package entity

import "time"

// Customer registro de cliente persistido. ID se asigna al crear y no cambia.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Address   *string
	VatNumber *string // 9 dígitos si está presente
	CreatedAt time.Time
}

// AddressOrEmpty devuelve la dirección o "" si no fue informada.
func (c *Customer) AddressOrEmpty() string {
	if c.Address == nil {
		return ""
	}
	return *c.Address
}
