package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de mutación de stock: las cuatro reglas origen/destino,
// idempotencia sobre operaciones DONE, omisión silenciosa de productos
// inexistentes y aplicación acumulativa de varias líneas.
// ──────────────────────────────────────────────────────────────────────────────

func testLocations() []entity.Location {
	return []entity.Location{
		{ID: "loc_vendor", Name: "Vendors", Kind: entity.LocationKindVendor},
		{ID: "loc_customer", Name: "Customers", Kind: entity.LocationKindCustomer},
		{ID: "loc_wh_stock", Name: "WH/Stock", Kind: entity.LocationKindInternal},
		{ID: "loc_wh_pack", Name: "WH/Packing Zone", Kind: entity.LocationKindInternal},
		{ID: "loc_loss", Name: "Inventory Loss", Kind: entity.LocationKindInventoryLoss},
	}
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Steel Rods 10mm", Stock: 150, LocationID: "loc_wh_stock"},
		{ID: "p2", Name: "Office Chair", Stock: 45, LocationID: "loc_wh_stock"},
	}
}

func newOperation(opType, source, dest string, lines ...entity.OperationLine) entity.Operation {
	return entity.Operation{
		ID:               "op_test",
		Type:             opType,
		Reference:        "WH/TST/0001",
		SourceLocationID: source,
		DestLocationID:   dest,
		Status:           entity.StatusReady,
		Date:             time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
		Lines:            lines,
	}
}

func TestApply_ExternoAInterno_SumaStockYMueveUbicacion(t *testing.T) {
	op := newOperation(entity.OperationTypeReceipt, "loc_vendor", "loc_wh_pack",
		entity.OperationLine{ProductID: "p1", ProductName: "Steel Rods 10mm", Quantity: 20})

	next, status, skipped := stock.Apply(op, testProducts(), testLocations())

	require.Equal(t, entity.StatusDone, status)
	assert.Empty(t, skipped)
	assert.Equal(t, 170, next[0].Stock, "una recepción debe sumar exactamente la cantidad de la línea")
	assert.Equal(t, "loc_wh_pack", next[0].LocationID, "el producto debe quedar en la ubicación destino")
}

func TestApply_InternoAExterno_RestaStockSinMoverUbicacion(t *testing.T) {
	op := newOperation(entity.OperationTypeDelivery, "loc_wh_stock", "loc_customer",
		entity.OperationLine{ProductID: "p2", ProductName: "Office Chair", Quantity: 5})

	next, status, _ := stock.Apply(op, testProducts(), testLocations())

	require.Equal(t, entity.StatusDone, status)
	assert.Equal(t, 40, next[1].Stock, "una entrega debe restar exactamente la cantidad de la línea")
	assert.Equal(t, "loc_wh_stock", next[1].LocationID, "la ubicación no cambia en una salida")
}

func TestApply_InternoAInterno_ReubicaSinCambiarStock(t *testing.T) {
	op := newOperation(entity.OperationTypeInternal, "loc_wh_stock", "loc_wh_pack",
		entity.OperationLine{ProductID: "p1", ProductName: "Steel Rods 10mm", Quantity: 100})

	next, _, _ := stock.Apply(op, testProducts(), testLocations())

	assert.Equal(t, 150, next[0].Stock, "un traslado interno conserva el stock total")
	assert.Equal(t, "loc_wh_pack", next[0].LocationID)
}

func TestApply_ExternoAExterno_SinEfecto(t *testing.T) {
	op := newOperation(entity.OperationTypeDelivery, "loc_vendor", "loc_customer",
		entity.OperationLine{ProductID: "p1", ProductName: "Steel Rods 10mm", Quantity: 30})

	next, status, _ := stock.Apply(op, testProducts(), testLocations())

	require.Equal(t, entity.StatusDone, status, "la operación igualmente queda DONE")
	assert.Equal(t, testProducts(), next, "un movimiento externo→externo no toca el catálogo")
}

func TestApply_OperacionDone_EsNoOpIdempotente(t *testing.T) {
	op := newOperation(entity.OperationTypeReceipt, "loc_vendor", "loc_wh_stock",
		entity.OperationLine{ProductID: "p1", ProductName: "Steel Rods 10mm", Quantity: 50})

	once, status, _ := stock.Apply(op, testProducts(), testLocations())
	require.Equal(t, entity.StatusDone, status)

	op.Status = status
	twice, again, skipped := stock.Apply(op, once, testLocations())

	assert.Equal(t, entity.StatusDone, again)
	assert.Empty(t, skipped)
	assert.Equal(t, once, twice, "validar dos veces debe dejar el mismo catálogo que validar una vez")
}

func TestApply_ProductoInexistente_SeOmiteSinAfectarOtrasLineas(t *testing.T) {
	op := newOperation(entity.OperationTypeReceipt, "loc_vendor", "loc_wh_stock",
		entity.OperationLine{ProductID: "p_fantasma", ProductName: "Unknown", Quantity: 10},
		entity.OperationLine{ProductID: "p1", ProductName: "Steel Rods 10mm", Quantity: 20})

	next, status, skipped := stock.Apply(op, testProducts(), testLocations())

	require.Equal(t, entity.StatusDone, status)
	assert.Equal(t, []string{"p_fantasma"}, skipped, "la línea inválida se reporta, no se lanza error")
	assert.Equal(t, 170, next[0].Stock, "la línea válida se aplica igual")
}

func TestApply_VariasLineasMismoProducto_SeAcumulan(t *testing.T) {
	op := newOperation(entity.OperationTypeReceipt, "loc_vendor", "loc_wh_stock",
		entity.OperationLine{ProductID: "p1", Quantity: 10},
		entity.OperationLine{ProductID: "p1", Quantity: 15})

	next, _, _ := stock.Apply(op, testProducts(), testLocations())

	assert.Equal(t, 175, next[0].Stock, "las líneas se aplican en orden sobre la misma copia de trabajo")
}

func TestApply_StockPuedeQuedarNegativo(t *testing.T) {
	op := newOperation(entity.OperationTypeDelivery, "loc_wh_stock", "loc_customer",
		entity.OperationLine{ProductID: "p2", Quantity: 100})

	next, _, _ := stock.Apply(op, testProducts(), testLocations())

	assert.Equal(t, -55, next[1].Stock, "no hay verificación de disponibilidad ni piso en cero")
}

func TestApply_UbicacionInexistente_CuentaComoExterna(t *testing.T) {
	// Origen desconocido + destino interno se comporta como una recepción.
	op := newOperation(entity.OperationTypeReceipt, "loc_desconocida", "loc_wh_stock",
		entity.OperationLine{ProductID: "p1", Quantity: 5})

	next, _, _ := stock.Apply(op, testProducts(), testLocations())

	assert.Equal(t, 155, next[0].Stock)
	assert.Equal(t, "loc_wh_stock", next[0].LocationID)
}

func TestApply_NoMutaElCatalogoDeEntrada(t *testing.T) {
	products := testProducts()
	op := newOperation(entity.OperationTypeReceipt, "loc_vendor", "loc_wh_stock",
		entity.OperationLine{ProductID: "p1", Quantity: 20})

	_, _, _ = stock.Apply(op, products, testLocations())

	assert.Equal(t, 150, products[0].Stock, "Apply debe trabajar sobre una copia, no sobre el argumento")
}
