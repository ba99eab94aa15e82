// Package dto define los contratos de entrada de la capa de aplicación.
// Los Validate() endurecen el borde de la API: rechazan entradas malformadas
// que el tablero original aceptaba sin revisar, sin cambiar la lógica núcleo.
package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto del catálogo.
// El caller aporta stock y ubicación iniciales; el ID se genera si viene vacío.
type CreateProductRequest struct {
	ID         string
	Name       string
	SKU        string
	Category   string
	UOM        string
	Stock      int
	LocationID string
	Price      decimal.Decimal
}

// Validate aplica las reglas de entrada. La unicidad de SKU no se valida
// (comportamiento heredado del tablero original).
func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("el nombre es obligatorio")),
		validation.Field(&r.SKU, validation.Required.Error("el SKU es obligatorio")),
		validation.Field(&r.LocationID, validation.Required.Error("la ubicación inicial es obligatoria")),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
	)
}

// AdjustStockRequest corrección manual: sobrescribe stock y ubicación del
// producto, sin pasar por el flujo de operaciones y sin dejar historial.
// El stock puede ser cualquier entero, incluso negativo.
type AdjustStockRequest struct {
	ProductID  string
	Stock      int
	LocationID string
}

// Validate aplica las reglas de entrada.
func (r AdjustStockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required.Error("el producto es obligatorio")),
		validation.Field(&r.LocationID, validation.Required.Error("la ubicación es obligatoria")),
	)
}

func nonNegativePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("precio inválido")
	}
	if price.IsNegative() {
		return errors.New("el precio no puede ser negativo")
	}
	return nil
}
