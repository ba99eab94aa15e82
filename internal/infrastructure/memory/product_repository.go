package memory

import (
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el estado en memoria.
type ProductRepo struct {
	src StateSource
}

// NewProductRepository construye el adaptador del catálogo.
func NewProductRepository(src StateSource) *ProductRepo {
	return &ProductRepo{src: src}
}

// Create antepone el producto al catálogo (los más recientes primero).
// No se verifica unicidad de SKU ni integridad referencial de la ubicación.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	p := *product
	return r.src.update(func(st *entity.State) error {
		st.Products = append([]entity.Product{p}, st.Products...)
		return nil
	})
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	st := r.src.Snapshot()
	for i := range st.Products {
		if st.Products[i].ID == id {
			p := st.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// List devuelve el catálogo completo, los más recientes primero.
func (r *ProductRepo) List() ([]entity.Product, error) {
	return r.src.Snapshot().Products, nil
}

// AdjustStock sobrescribe stock y ubicación del producto indicado.
func (r *ProductRepo) AdjustStock(productID string, stock int, locationID string) error {
	return r.src.update(func(st *entity.State) error {
		for i := range st.Products {
			if st.Products[i].ID == productID {
				p := st.Products[i]
				p.Stock = stock
				p.LocationID = locationID
				st.Products[i] = p
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// ReplaceAll sustituye el catálogo completo.
func (r *ProductRepo) ReplaceAll(products []entity.Product) error {
	next := make([]entity.Product, len(products))
	copy(next, products)
	return r.src.update(func(st *entity.State) error {
		st.Products = next
		return nil
	})
}
