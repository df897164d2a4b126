package ports

import (
	"context"

	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
)

// GeocodingGateway puerto de salida hacia el servicio de geocodificación directa.
// Cualquier fallo remoto (status no exitoso, red, payload ilegible, sin candidatos)
// se reporta como domain.ErrCodeGeocodingRequest.
type GeocodingGateway interface {
	ResolveLocation(ctx context.Context, address string) domain.Result[entity.Location]
}

// OperationRecorder registra el resultado de cada operación del orquestador.
type OperationRecorder interface {
	ObserveOperation(operation string, code domain.ErrorCode)
}
