package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
	"github.com/jhoicas/rocketstore-api/internal/domain/repository"
	"github.com/jhoicas/rocketstore-api/pkg/config"
)

// openPoolForIntegrationTest requiere ROCKETSTORE_POSTGRES_TEST_DSN; sin ella el test se omite.
func openPoolForIntegrationTest(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("ROCKETSTORE_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("ROCKETSTORE_POSTGRES_TEST_DSN no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE customers`)
	require.NoError(t, err)
	return pool
}

func newTestCustomer(email string) *entity.Customer {
	vat := "123456789"
	return &entity.Customer{
		ID:        uuid.New().String(),
		Name:      "My customer",
		Email:     email,
		VatNumber: &vat,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestCustomerRepo_Integration_Lifecycle(t *testing.T) {
	pool := openPoolForIntegrationTest(t)
	ctx := context.Background()
	runner := NewTxRunner(pool)
	c := newTestCustomer("mycustomer@server.pt")

	require.NoError(t, runner.Run(ctx, func(repo repository.CustomerRepository) error {
		return repo.Add(ctx, c)
	}))

	require.NoError(t, runner.Run(ctx, func(repo repository.CustomerRepository) error {
		got, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, c.Email, got.Email)
		assert.Nil(t, got.Address)
		require.NotNil(t, got.VatNumber)
		assert.Equal(t, "123456789", *got.VatNumber)

		notUUID, err := repo.FindByID(ctx, "not-a-uuid")
		require.NoError(t, err)
		assert.Nil(t, notUUID)

		list, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		return nil
	}))

	require.NoError(t, runner.Run(ctx, func(repo repository.CustomerRepository) error {
		return repo.Remove(ctx, c)
	}))
	require.NoError(t, runner.Run(ctx, func(repo repository.CustomerRepository) error {
		got, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
		return nil
	}))
}

func TestCustomerRepo_Integration_UniqueEmail(t *testing.T) {
	pool := openPoolForIntegrationTest(t)
	ctx := context.Background()
	runner := NewTxRunner(pool)

	require.NoError(t, runner.Run(ctx, func(repo repository.CustomerRepository) error {
		return repo.Add(ctx, newTestCustomer("customer@server.pt"))
	}))
	err := runner.Run(ctx, func(repo repository.CustomerRepository) error {
		return repo.Add(ctx, newTestCustomer("customer@server.pt"))
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
