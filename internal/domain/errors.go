package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrDuplicate lo devuelven los stores cuando se viola la unicidad del email.
	ErrDuplicate = errors.New("recurso duplicado")
	// ErrValueOfFailedResult se devuelve al pedir el valor de un Result fallido.
	ErrValueOfFailedResult = errors.New("el resultado no contiene valor: la operación falló")
)

// ErrorCode identifica el tipo de fallo de una operación de clientes.
// Los callers comparan códigos, nunca descripciones.
type ErrorCode string

const (
	// ErrCodeValidationFailed violaciones por campo detectadas antes de orquestar.
	ErrCodeValidationFailed ErrorCode = "ValidationFailed"
	// ErrCodeCustomerAlreadyExists ya existe un cliente con el mismo email.
	ErrCodeCustomerAlreadyExists ErrorCode = "CustomerAlreadyExists"
	// ErrCodeInexistentCustomer no hay cliente con ese ID.
	ErrCodeInexistentCustomer ErrorCode = "InexistentCustomer"
	// ErrCodeGeocodingRequest la llamada al servicio de geocodificación no tuvo éxito.
	ErrCodeGeocodingRequest ErrorCode = "ErrorRequestingFromGeocodingAPI"
	// ErrCodePersistence el store o el commit fallaron.
	ErrCodePersistence ErrorCode = "PersistenceError"
)

// Error fallo tipado (código + descripción) extraído de un Result.
type Error struct {
	Code        ErrorCode
	Description string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Description
}

// Is permite errors.Is(err, &domain.Error{Code: ...}) comparando solo el código.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
