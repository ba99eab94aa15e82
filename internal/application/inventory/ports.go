package inventory

import (
	"context"

	"github.com/stockmaster/stockmaster/internal/domain/repository"
)

// UnitOfWork ejecuta una función de forma atómica sobre los registros de la
// sesión, pasando repositorios atados a una copia de trabajo del estado.
// Garantiza que la validación de una operación publique productos y operación
// como un todo, o nada.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error) error
}
