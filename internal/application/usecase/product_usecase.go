package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

// ProductUseCase casos de uso del catálogo: alta, consulta y ajuste manual.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// Create crea un producto con el stock y la ubicación iniciales aportados por
// el caller. La unicidad de SKU no se comprueba.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	id := in.ID
	if id == "" {
		id = "p_" + uuid.New().String()
	}
	product := &entity.Product{
		ID:         id,
		Name:       in.Name,
		SKU:        in.SKU,
		Category:   in.Category,
		UOM:        in.UOM,
		Stock:      in.Stock,
		LocationID: in.LocationID,
		Price:      in.Price,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Int("stock", product.Stock).
		Msg("producto creado")
	return product, nil
}

// GetByID obtiene un producto; nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// List devuelve el catálogo completo, los más recientes primero.
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.repo.List()
}

// Search filtra por nombre o SKU, sin distinguir mayúsculas.
func (uc *ProductUseCase) Search(term string) ([]entity.Product, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.SKU), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AdjustStock sobrescribe stock y ubicación del producto, fuera del flujo de
// operaciones y sin dejar historial. Un producto inexistente devuelve
// ErrNotFound en lugar del no-op silencioso del tablero original.
func (uc *ProductUseCase) AdjustStock(in dto.AdjustStockRequest) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := uc.repo.AdjustStock(in.ProductID, in.Stock, in.LocationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warn().Str("product_id", in.ProductID).Msg("ajuste sobre producto inexistente")
		}
		return err
	}
	uc.log.Info().
		Str("product_id", in.ProductID).
		Int("stock", in.Stock).
		Str("location_id", in.LocationID).
		Msg("stock ajustado manualmente")
	return nil
}
