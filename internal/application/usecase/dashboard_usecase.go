package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
)

const dashboardRecentOperations = 5 // número de operaciones en el widget de actividad

// DashboardUseCase genera el resumen del tablero a partir de los registros
// vivos: indicadores de stock, valor del inventario y desgloses para los
// gráficos. Solo lecturas; no muta nada.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	operationRepo repository.OperationRepository
	lowStock      int
}

// NewDashboardUseCase construye el caso de uso. lowStockThreshold marca el
// límite por debajo del cual un producto cuenta como stock bajo.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	operationRepo repository.OperationRepository,
	lowStockThreshold int,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:   productRepo,
		operationRepo: operationRepo,
		lowStock:      lowStockThreshold,
	}
}

// GetSummary construye el DashboardSummaryDTO con el estado actual.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	operations, err := uc.operationRepo.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		InventoryValue: decimal.Zero,
	}

	// ── Indicadores de catálogo ───────────────────────────────────────────────
	categoryIdx := map[string]int{}
	for _, p := range products {
		summary.TotalStock += p.Stock
		summary.InventoryValue = summary.InventoryValue.Add(
			p.Price.Mul(decimal.NewFromInt(int64(p.Stock))),
		)
		if p.Stock < uc.lowStock {
			summary.LowStockCount++
			summary.LowStockProducts = append(summary.LowStockProducts, p)
		}
		if i, ok := categoryIdx[p.Category]; ok {
			summary.StockByCategory[i].Stock += p.Stock
		} else {
			categoryIdx[p.Category] = len(summary.StockByCategory)
			summary.StockByCategory = append(summary.StockByCategory, dto.CategoryStockDTO{
				Category: p.Category,
				Stock:    p.Stock,
			})
		}
	}
	summary.InventoryValue = summary.InventoryValue.Round(2)

	// ── Indicadores de operaciones ────────────────────────────────────────────
	readyByType := map[string]int{}
	for _, op := range operations {
		pending := op.Status != entity.StatusDone && op.Status != entity.StatusCancelled
		switch {
		case op.Type == entity.OperationTypeReceipt && pending:
			summary.PendingReceipts++
		case op.Type == entity.OperationTypeDelivery && pending:
			summary.PendingDeliveries++
		}
		if op.Status == entity.StatusReady {
			readyByType[op.Type]++
		}
	}
	for _, opType := range []string{
		entity.OperationTypeReceipt,
		entity.OperationTypeDelivery,
		entity.OperationTypeInternal,
	} {
		summary.ReadyByType = append(summary.ReadyByType, dto.OperationCountDTO{
			Type:  opType,
			Count: readyByType[opType],
		})
	}

	recent := len(operations)
	if recent > dashboardRecentOperations {
		recent = dashboardRecentOperations
	}
	summary.RecentOperations = operations[:recent]

	return summary, nil
}
