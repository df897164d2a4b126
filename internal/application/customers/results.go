package customers

import (
	"fmt"

	"github.com/jhoicas/rocketstore-api/internal/domain"
)

// record registra el resultado en métricas y lo devuelve sin cambios.
func record[T any](uc *CustomerUseCase, op string, r domain.Result[T]) domain.Result[T] {
	if uc.recorder != nil {
		uc.recorder.ObserveOperation(op, r.ErrorCode())
	}
	return r
}

func notFound[T any](uc *CustomerUseCase, op, id string) domain.Result[T] {
	msg := fmt.Sprintf("Couldn't find any customer with id equal to '%s'.", id)
	uc.log.Warn().Str("op", op).Str("id", id).Msg("cliente inexistente")
	return domain.Failure[T](domain.ErrCodeInexistentCustomer, msg)
}

func persistenceFailure[T any](uc *CustomerUseCase, op string, err error) domain.Result[T] {
	uc.log.Error().Err(err).Str("op", op).Msg("error de persistencia")
	return domain.Failure[T](domain.ErrCodePersistence, "The customer store could not complete the operation.")
}
