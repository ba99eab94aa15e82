package repository

import "github.com/stockmaster/stockmaster/internal/domain/entity"

// ProductRepository define el puerto del registro de catálogo (DIP).
// GetByID devuelve nil, nil si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]entity.Product, error)
	// AdjustStock sobrescribe stock y ubicación del producto (corrección
	// manual); el valor anterior se pierde, no hay historial.
	AdjustStock(productID string, stock int, locationID string) error
	// ReplaceAll sustituye el catálogo completo; lo usa la validación de
	// operaciones dentro de la unidad de trabajo.
	ReplaceAll(products []entity.Product) error
}
