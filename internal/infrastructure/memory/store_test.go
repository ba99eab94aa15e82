package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
	"github.com/stockmaster/stockmaster/internal/infrastructure/memory"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.NewStore(memory.SeedState())
}

func TestSeedState_ReproduceLosValoresIniciales(t *testing.T) {
	st := memory.SeedState()

	require.Len(t, st.Locations, 6)
	require.Len(t, st.Products, 5)
	require.Len(t, st.Operations, 3)

	assert.Equal(t, "loc_vendor", st.Locations[0].ID)
	assert.Equal(t, entity.LocationKindInventoryLoss, st.Locations[5].Kind)

	assert.Equal(t, "Steel Rods 10mm", st.Products[0].Name)
	assert.Equal(t, 150, st.Products[0].Stock)
	assert.True(t, st.Products[0].Price.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, 0, st.Products[4].Stock, "Laptop Stand arranca sin stock")

	assert.Equal(t, entity.StatusDone, st.Operations[0].Status)
	assert.Equal(t, entity.StatusReady, st.Operations[1].Status)
	assert.Equal(t, entity.StatusDraft, st.Operations[2].Status)
	assert.Equal(t, "WH/OUT/0001", st.Operations[1].Reference)
}

func TestSnapshot_EsUnaCopiaAislada(t *testing.T) {
	store := seededStore(t)

	snap := store.Snapshot()
	snap.Products[0].Stock = -999
	snap.Operations[0].Lines[0].Quantity = -999

	fresh := store.Snapshot()
	assert.Equal(t, 150, fresh.Products[0].Stock, "mutar un snapshot no debe tocar el estado publicado")
	assert.Equal(t, 50, fresh.Operations[0].Lines[0].Quantity)
}

func TestProductRepo_CreateAntepone(t *testing.T) {
	store := seededStore(t)
	repo := memory.NewProductRepository(store)

	err := repo.Create(&entity.Product{ID: "p6", Name: "Cable Ties", SKU: "HDW-100", Stock: 10, LocationID: "loc_wh_stock"})
	require.NoError(t, err)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, "p6", list[0].ID, "los productos más recientes van primero")
}

func TestProductRepo_GetByID_NilNilSiNoExiste(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t))

	p, err := repo.GetByID("p_fantasma")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_AdjustStock_SobrescribeStockYUbicacion(t *testing.T) {
	store := seededStore(t)
	repo := memory.NewProductRepository(store)

	require.NoError(t, repo.AdjustStock("p5", 30, "loc_wh_pack"))

	p, err := repo.GetByID("p5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 30, p.Stock)
	assert.Equal(t, "loc_wh_pack", p.LocationID)
}

func TestProductRepo_AdjustStock_ProductoInexistente(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t))

	err := repo.AdjustStock("p_fantasma", 10, "loc_wh_stock")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOperationRepo_CreateAnteponeYListByTypeFiltra(t *testing.T) {
	store := seededStore(t)
	repo := memory.NewOperationRepository(store)

	err := repo.Create(&entity.Operation{
		ID: "op4", Type: entity.OperationTypeReceipt, Reference: "WH/IN/0002",
		SourceLocationID: "loc_vendor", DestLocationID: "loc_wh_input",
		Status: entity.StatusReady,
		Lines:  []entity.OperationLine{{ProductID: "p4", ProductName: "Red Paint", Quantity: 8}},
	})
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, "op4", all[0].ID)

	receipts, err := repo.ListByType(entity.OperationTypeReceipt)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, []string{"op4", "op1"}, []string{receipts[0].ID, receipts[1].ID})
}

func TestLocationRepo_CreateAgregaAlFinal(t *testing.T) {
	store := seededStore(t)
	repo := memory.NewLocationRepository(store)

	err := repo.Create(&entity.Location{ID: "loc_nueva", Name: "WH/Returns", Kind: entity.LocationKindInternal})
	require.NoError(t, err)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 7)
	assert.Equal(t, "loc_nueva", list[6].ID, "las ubicaciones conservan el orden de alta")

	internal, err := repo.ListInternal()
	require.NoError(t, err)
	assert.Len(t, internal, 4)
}

func TestUnitOfWork_DescartaLaCopiaSiFnFalla(t *testing.T) {
	store := seededStore(t)
	uow := memory.NewUnitOfWork(store)

	boom := errors.New("boom")
	err := uow.Run(context.Background(), func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		require.NoError(t, productRepo.AdjustStock("p1", 0, "loc_wh_pack"))
		require.NoError(t, opRepo.UpdateStatus("op2", entity.StatusDone))
		return boom
	})
	require.ErrorIs(t, err, boom)

	st := store.Snapshot()
	assert.Equal(t, 150, st.Products[0].Stock, "nada de la copia de trabajo debe publicarse")
	assert.Equal(t, entity.StatusReady, st.Operations[1].Status)
}

func TestUnitOfWork_PublicaLaCopiaComoUnTodo(t *testing.T) {
	store := seededStore(t)
	uow := memory.NewUnitOfWork(store)

	err := uow.Run(context.Background(), func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		if err := productRepo.AdjustStock("p1", 175, "loc_wh_pack"); err != nil {
			return err
		}
		return opRepo.UpdateStatus("op2", entity.StatusDone)
	})
	require.NoError(t, err)

	st := store.Snapshot()
	assert.Equal(t, 175, st.Products[0].Stock)
	assert.Equal(t, entity.StatusDone, st.Operations[1].Status)
}

func TestUnitOfWork_RespetaContextoCancelado(t *testing.T) {
	store := seededStore(t)
	uow := memory.NewUnitOfWork(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uow.Run(ctx, func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		t.Fatal("fn no debe ejecutarse con contexto cancelado")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
