package memory

import (
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre el estado en memoria.
type LocationRepo struct {
	src StateSource
}

// NewLocationRepository construye el adaptador del registro de ubicaciones.
func NewLocationRepository(src StateSource) *LocationRepo {
	return &LocationRepo{src: src}
}

// Create agrega la ubicación al final, conservando el orden de alta.
func (r *LocationRepo) Create(location *entity.Location) error {
	if location == nil {
		return domain.ErrInvalidInput
	}
	loc := *location
	return r.src.update(func(st *entity.State) error {
		st.Locations = append(st.Locations, loc)
		return nil
	})
}

// GetByID obtiene una ubicación por ID; nil, nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	st := r.src.Snapshot()
	for i := range st.Locations {
		if st.Locations[i].ID == id {
			loc := st.Locations[i]
			return &loc, nil
		}
	}
	return nil, nil
}

// List devuelve todas las ubicaciones en orden de alta.
func (r *LocationRepo) List() ([]entity.Location, error) {
	return r.src.Snapshot().Locations, nil
}

// ListInternal devuelve solo las bodegas internas (las elegibles como destino
// de ajustes y altas de bodega).
func (r *LocationRepo) ListInternal() ([]entity.Location, error) {
	st := r.src.Snapshot()
	out := make([]entity.Location, 0, len(st.Locations))
	for _, loc := range st.Locations {
		if loc.Kind == entity.LocationKindInternal {
			out = append(out, loc)
		}
	}
	return out, nil
}
