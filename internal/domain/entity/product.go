package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con su stock disponible.
// Stock es entero y puede quedar negativo (no hay piso ni reserva previa).
// LocationID es la ubicación única actual: el modelo no soporta stock
// repartido entre varias ubicaciones.
type Product struct {
	ID         string
	Name       string
	SKU        string // texto libre; la unicidad no se valida
	Category   string
	UOM        string // unidad de medida
	Stock      int
	LocationID string
	Price      decimal.Decimal // precio unitario de venta
}
