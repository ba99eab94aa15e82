package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/application/usecase"
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/infrastructure/memory"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

func newWarehouseUC(t *testing.T) *usecase.WarehouseUseCase {
	t.Helper()
	store := memory.NewStore(memory.SeedState())
	return usecase.NewWarehouseUseCase(memory.NewLocationRepository(store), logger.Nop())
}

func TestAddLocation_CreaBodegaInterna(t *testing.T) {
	uc := newWarehouseUC(t)

	loc, err := uc.AddLocation(dto.AddLocationRequest{Name: "WH/Returns"})
	require.NoError(t, err)
	assert.Equal(t, entity.LocationKindInternal, loc.Kind, "la interfaz solo da de alta bodegas internas")
	assert.NotEmpty(t, loc.ID)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 7)
	assert.Equal(t, loc.ID, list[6].ID, "la nueva bodega va al final")
}

func TestAddLocation_RechazaNombreVacio(t *testing.T) {
	uc := newWarehouseUC(t)

	_, err := uc.AddLocation(dto.AddLocationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListInternal_ExcluyeFronterasExternas(t *testing.T) {
	uc := newWarehouseUC(t)

	internal, err := uc.ListInternal()
	require.NoError(t, err)
	require.Len(t, internal, 3)
	for _, loc := range internal {
		assert.Equal(t, entity.LocationKindInternal, loc.Kind)
	}
}
