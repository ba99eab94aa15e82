package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/stockmaster/stockmaster/internal/domain/entity"
)

// OperationLineRequest línea de una operación a crear. El nombre del producto
// no viene en el request: se captura del catálogo al crear la operación.
type OperationLineRequest struct {
	ProductID string
	Quantity  int
}

// Validate exige cantidad positiva (endurecimiento: el tablero original no lo
// comprobaba).
func (r OperationLineRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required.Error("el producto es obligatorio")),
		validation.Field(&r.Quantity, validation.Min(1).Error("la cantidad debe ser positiva")),
	)
}

// CreateOperationRequest datos para crear una operación lista para validar.
// La integridad referencial de ubicaciones y productos no se comprueba al
// crear (comportamiento heredado); Reference se genera si viene vacía.
type CreateOperationRequest struct {
	Type             string
	Reference        string
	SourceLocationID string
	DestLocationID   string
	Lines            []OperationLineRequest
}

// Validate aplica las reglas de entrada.
func (r CreateOperationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(
			entity.OperationTypeReceipt,
			entity.OperationTypeDelivery,
			entity.OperationTypeInternal,
		).Error("tipo de operación desconocido")),
		validation.Field(&r.SourceLocationID, validation.Required.Error("la ubicación origen es obligatoria")),
		validation.Field(&r.DestLocationID, validation.Required.Error("la ubicación destino es obligatoria")),
		validation.Field(&r.Lines, validation.Required.Error("la operación necesita al menos una línea")),
	)
}
