package entity

import "time"

// Tipos de operación de inventario.
const (
	OperationTypeReceipt    = "RECEIPT"    // entrada desde proveedor
	OperationTypeDelivery   = "DELIVERY"   // salida hacia cliente
	OperationTypeInternal   = "INTERNAL"   // traslado entre bodegas
	OperationTypeAdjustment = "ADJUSTMENT" // declarado; ninguna vista lo produce hoy
)

// Estados de una operación. DONE y CANCELLED son terminales.
const (
	StatusDraft     = "DRAFT"
	StatusReady     = "READY"
	StatusDone      = "DONE"
	StatusCancelled = "CANCELLED"
)

// OperationLine es una línea de operación: mueve una cantidad de un producto.
// ProductName se captura al crear la línea y no se resincroniza si el producto
// cambia de nombre después (instantánea histórica).
type OperationLine struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// Operation representa una transacción de movimiento de stock con una o más
// líneas entre una ubicación origen y una destino. Una vez DONE es inmutable.
type Operation struct {
	ID               string
	Type             string
	Reference        string // ej. WH/IN/0001
	SourceLocationID string
	DestLocationID   string
	Status           string
	Date             time.Time
	Lines            []OperationLine
}
