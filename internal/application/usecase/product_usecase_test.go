package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/application/usecase"
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/infrastructure/memory"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(memory.SeedState())
	return usecase.NewProductUseCase(memory.NewProductRepository(store), logger.Nop()), store
}

func TestProductCreate_AnteponeAlCatalogo(t *testing.T) {
	uc, _ := newProductUC(t)

	p, err := uc.Create(dto.CreateProductRequest{
		Name:       "Cable Ties",
		SKU:        "HDW-100",
		Category:   "Hardware",
		UOM:        "Box",
		Stock:      25,
		LocationID: "loc_wh_stock",
		Price:      decimal.NewFromFloat(3.20),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestProductCreate_NoExigeSKUUnico(t *testing.T) {
	uc, _ := newProductUC(t)

	// ST-1001 ya existe en los datos de arranque; el alta se acepta igual.
	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Steel Rods 12mm",
		SKU:        "ST-1001",
		LocationID: "loc_wh_stock",
	})
	assert.NoError(t, err)
}

func TestProductCreate_RechazaEntradaInvalida(t *testing.T) {
	uc, _ := newProductUC(t)

	cases := map[string]dto.CreateProductRequest{
		"sin nombre":       {SKU: "X-1", LocationID: "loc_wh_stock"},
		"sin SKU":          {Name: "X", LocationID: "loc_wh_stock"},
		"sin ubicación":    {Name: "X", SKU: "X-1"},
		"precio negativo":  {Name: "X", SKU: "X-1", LocationID: "loc_wh_stock", Price: decimal.NewFromFloat(-1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductSearch_PorNombreOSKU(t *testing.T) {
	uc, _ := newProductUC(t)

	byName, err := uc.Search("chair")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p2", byName[0].ID)

	bySKU, err := uc.Search("hdw")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "p3", bySKU[0].ID)
}

// Escenario D: ajustar Laptop Stand (stock 0 en el arranque) a 30 unidades en
// loc_wh_pack deja exactamente ese estado y no crea ninguna operación.
func TestAdjustStock_CorreccionManual(t *testing.T) {
	uc, store := newProductUC(t)

	err := uc.AdjustStock(dto.AdjustStockRequest{
		ProductID:  "p5",
		Stock:      30,
		LocationID: "loc_wh_pack",
	})
	require.NoError(t, err)

	st := store.Snapshot()
	for _, p := range st.Products {
		if p.ID == "p5" {
			assert.Equal(t, 30, p.Stock)
			assert.Equal(t, "loc_wh_pack", p.LocationID)
		}
	}
	assert.Len(t, st.Operations, 3, "el ajuste manual no registra operación")
}

func TestAdjustStock_PermiteStockNegativo(t *testing.T) {
	uc, store := newProductUC(t)

	require.NoError(t, uc.AdjustStock(dto.AdjustStockRequest{
		ProductID:  "p4",
		Stock:      -5,
		LocationID: "loc_wh_stock",
	}))

	for _, p := range store.Snapshot().Products {
		if p.ID == "p4" {
			assert.Equal(t, -5, p.Stock)
		}
	}
}

func TestAdjustStock_ProductoInexistente(t *testing.T) {
	uc, _ := newProductUC(t)

	err := uc.AdjustStock(dto.AdjustStockRequest{
		ProductID:  "p_fantasma",
		Stock:      10,
		LocationID: "loc_wh_stock",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
