package customers

import (
	"context"

	"github.com/jhoicas/rocketstore-api/internal/domain/repository"
)

// TxRunner abre una sesión del store por operación, pasa el repositorio atado a ella
// y hace Commit si fn devuelve nil (Rollback en otro caso).
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.CustomerRepository) error) error
}
