package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

// WarehouseUseCase casos de uso del registro de ubicaciones. La interfaz solo
// da de alta bodegas internas; los tipos externos existen únicamente en los
// datos de arranque.
type WarehouseUseCase struct {
	repo repository.LocationRepository
	log  *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.LocationRepository, log *logger.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, log: log}
}

// AddLocation crea una bodega interna con ID nuevo. Las ubicaciones nunca se
// borran ni cambian de tipo después.
func (uc *WarehouseUseCase) AddLocation(in dto.AddLocationRequest) (*entity.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	location := &entity.Location{
		ID:   "loc_" + uuid.New().String(),
		Name: in.Name,
		Kind: entity.LocationKindInternal,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("location_id", location.ID).
		Str("name", location.Name).
		Msg("bodega creada")
	return location, nil
}

// GetByID obtiene una ubicación; nil, nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*entity.Location, error) {
	return uc.repo.GetByID(id)
}

// List devuelve todas las ubicaciones en orden de alta.
func (uc *WarehouseUseCase) List() ([]entity.Location, error) {
	return uc.repo.List()
}

// ListInternal devuelve solo las bodegas internas.
func (uc *WarehouseUseCase) ListInternal() ([]entity.Location, error) {
	return uc.repo.ListInternal()
}
