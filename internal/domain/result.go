package domain

import "fmt"

// Result contenedor éxito/fallo devuelto por todas las operaciones del orquestador.
// Exactamente uno de {valor, código de error} está poblado.
type Result[T any] struct {
	value       T
	code        ErrorCode
	description string
}

// Success construye un resultado exitoso.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure construye un resultado fallido. Un código vacío es un error de programación.
func Failure[T any](code ErrorCode, description string) Result[T] {
	if code == "" {
		panic("domain: Failure requiere un código de error")
	}
	return Result[T]{code: code, description: description}
}

// Failed indica si la operación falló.
func (r Result[T]) Failed() bool { return r.code != "" }

// FailedWith indica si la operación falló con el código dado.
func (r Result[T]) FailedWith(code ErrorCode) bool {
	return r.Failed() && r.code == code
}

// ErrorCode devuelve el código de fallo ("" si tuvo éxito).
func (r Result[T]) ErrorCode() ErrorCode { return r.code }

// ErrorDescription devuelve la descripción legible del fallo.
func (r Result[T]) ErrorDescription() string { return r.description }

// Value devuelve el valor; en un resultado fallido devuelve ErrValueOfFailedResult.
func (r Result[T]) Value() (T, error) {
	if r.Failed() {
		var zero T
		return zero, fmt.Errorf("%w (%s)", ErrValueOfFailedResult, r.code)
	}
	return r.value, nil
}

// Err devuelve el fallo como *Error, o nil si tuvo éxito.
func (r Result[T]) Err() error {
	if !r.Failed() {
		return nil
	}
	return &Error{Code: r.code, Description: r.description}
}

// FailureFrom propaga el fallo de otro resultado cambiando el tipo del valor.
func FailureFrom[T, U any](other Result[U]) Result[T] {
	return Failure[T](other.code, other.description)
}
