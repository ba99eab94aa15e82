package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster/internal/domain/entity"
)

// CategoryStockDTO stock agregado por categoría de producto.
type CategoryStockDTO struct {
	Category string
	Stock    int
}

// OperationCountDTO operaciones READY agrupadas por tipo.
type OperationCountDTO struct {
	Type  string
	Count int
}

// DashboardSummaryDTO resumen del tablero: indicadores de stock, valor del
// inventario, pendientes por tipo y desgloses para los gráficos.
type DashboardSummaryDTO struct {
	TotalStock        int
	InventoryValue    decimal.Decimal // Σ stock · precio, redondeado a 2 decimales
	LowStockCount     int
	LowStockProducts  []entity.Product
	PendingReceipts   int
	PendingDeliveries int
	StockByCategory   []CategoryStockDTO
	ReadyByType       []OperationCountDTO
	RecentOperations  []entity.Operation
}
