package postgres

import (
	"context"
	"fmt"
)

// customersDDL crea la tabla de clientes. El índice único sobre email cierra la carrera
// entre la verificación previa de Create y el INSERT.
const customersDDL = `
CREATE TABLE IF NOT EXISTS customers (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL CHECK (name <> ''),
	email       TEXT NOT NULL CHECK (email <> ''),
	address     TEXT NULL,
	vat_number  TEXT NULL CHECK (vat_number ~ '^[0-9]{9}$'),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	seq         BIGSERIAL NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS customers_email_key ON customers (email);
`

// EnsureSchema aplica el DDL idempotente de la tabla customers.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, customersDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
