package entity

// Tipos de ubicación (value object conceptual).
const (
	LocationKindVendor        = "VENDOR"
	LocationKindCustomer      = "CUSTOMER"
	LocationKindInternal      = "INTERNAL"
	LocationKindInventoryLoss = "INVENTORY_LOSS"
)

// Location representa una ubicación de inventario: bodega interna o frontera
// externa (proveedor, cliente, pérdida). ID y Kind son inmutables una vez creada.
type Location struct {
	ID   string
	Name string
	Kind string
}

// IsInternal indica si la ubicación es almacenamiento interno controlado.
// Cualquier otro tipo cuenta como frontera externa para el motor de stock.
func (l *Location) IsInternal() bool {
	return l != nil && l.Kind == LocationKindInternal
}
