package repository

import "github.com/stockmaster/stockmaster/internal/domain/entity"

// LocationRepository define el puerto del registro de ubicaciones (DIP).
// Las ubicaciones nunca se borran ni se reclasifican; el orden de alta se
// conserva. GetByID devuelve nil, nil si la ubicación no existe.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]entity.Location, error)
	ListInternal() ([]entity.Location, error)
}
