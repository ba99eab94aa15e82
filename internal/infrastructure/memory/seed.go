package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster/internal/domain/entity"
)

// ProductCategories categorías sugeridas para el formulario de productos.
var ProductCategories = []string{
	"Hardware",
	"Raw Material",
	"Consumable",
	"Furniture",
	"Accessories",
}

// SeedState devuelve el estado inicial de la sesión: 6 ubicaciones (1
// proveedor, 1 cliente, 3 bodegas internas, 1 pérdida), 5 productos y 3
// operaciones de ejemplo (una DONE, una READY, una DRAFT).
func SeedState() entity.State {
	return entity.State{
		Locations: []entity.Location{
			{ID: "loc_vendor", Name: "Vendors", Kind: entity.LocationKindVendor},
			{ID: "loc_customer", Name: "Customers", Kind: entity.LocationKindCustomer},
			{ID: "loc_wh_stock", Name: "WH/Stock", Kind: entity.LocationKindInternal},
			{ID: "loc_wh_pack", Name: "WH/Packing Zone", Kind: entity.LocationKindInternal},
			{ID: "loc_wh_input", Name: "WH/Input", Kind: entity.LocationKindInternal},
			{ID: "loc_loss", Name: "Inventory Loss", Kind: entity.LocationKindInventoryLoss},
		},
		Products: []entity.Product{
			{ID: "p1", Name: "Steel Rods 10mm", SKU: "ST-1001", Category: "Raw Material", UOM: "Units", Stock: 150, LocationID: "loc_wh_stock", Price: decimal.NewFromFloat(12.50)},
			{ID: "p2", Name: "Office Chair", SKU: "FURN-001", Category: "Furniture", UOM: "Units", Stock: 45, LocationID: "loc_wh_stock", Price: decimal.NewFromFloat(85.00)},
			{ID: "p3", Name: "Bolt M4", SKU: "HDW-022", Category: "Hardware", UOM: "Box", Stock: 500, LocationID: "loc_wh_stock", Price: decimal.NewFromFloat(0.50)},
			{ID: "p4", Name: "Red Paint", SKU: "PNT-RED", Category: "Consumable", UOM: "Liters", Stock: 20, LocationID: "loc_wh_stock", Price: decimal.NewFromFloat(18.00)},
			{ID: "p5", Name: "Laptop Stand", SKU: "ACC-LAP", Category: "Accessories", UOM: "Units", Stock: 0, LocationID: "loc_wh_stock", Price: decimal.NewFromFloat(25.00)},
		},
		Operations: []entity.Operation{
			{
				ID:               "op1",
				Type:             entity.OperationTypeReceipt,
				Reference:        "WH/IN/0001",
				SourceLocationID: "loc_vendor",
				DestLocationID:   "loc_wh_stock",
				Status:           entity.StatusDone,
				Date:             time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC),
				Lines: []entity.OperationLine{
					{ProductID: "p1", ProductName: "Steel Rods 10mm", Quantity: 50},
				},
			},
			{
				ID:               "op2",
				Type:             entity.OperationTypeDelivery,
				Reference:        "WH/OUT/0001",
				SourceLocationID: "loc_wh_stock",
				DestLocationID:   "loc_customer",
				Status:           entity.StatusReady,
				Date:             time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
				Lines: []entity.OperationLine{
					{ProductID: "p2", ProductName: "Office Chair", Quantity: 5},
				},
			},
			{
				ID:               "op3",
				Type:             entity.OperationTypeInternal,
				Reference:        "WH/INT/0001",
				SourceLocationID: "loc_wh_stock",
				DestLocationID:   "loc_wh_pack",
				Status:           entity.StatusDraft,
				Date:             time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
				Lines: []entity.OperationLine{
					{ProductID: "p3", ProductName: "Bolt M4", Quantity: 100},
				},
			},
		},
	}
}
