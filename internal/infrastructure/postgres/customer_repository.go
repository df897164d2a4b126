package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
	"github.com/jhoicas/rocketstore-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, address, vat_number, created_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Add persiste un nuevo cliente.
func (r *CustomerRepo) Add(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, address, vat_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Email, c.Address, c.VatNumber, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// FindByID obtiene un cliente por ID. Un ID que no es UUID no puede existir: nil, nil.
func (r *CustomerRepo) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// FindByEmail obtiene un cliente por email exacto.
func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// Remove elimina el cliente.
func (r *CustomerRepo) Remove(ctx context.Context, c *entity.Customer) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, c.ID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll lista todos los clientes en orden de inserción.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.VatNumber, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// scanCustomer devuelve nil, nil cuando no hay filas.
func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.VatNumber, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
