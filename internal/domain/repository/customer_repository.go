package repository

import (
	"context"

	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Las escrituras quedan pendientes hasta el commit del TxRunner que entregó el repo.
type CustomerRepository interface {
	// Add agrega un cliente. Devuelve domain.ErrDuplicate si el email ya existe.
	Add(ctx context.Context, customer *entity.Customer) error
	// FindByID devuelve nil, nil si no existe.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	// FindByEmail busca por coincidencia exacta del email; nil, nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Remove(ctx context.Context, customer *entity.Customer) error
	// ListAll devuelve todos los clientes en el orden natural del store.
	ListAll(ctx context.Context) ([]*entity.Customer, error)
}
