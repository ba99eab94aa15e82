// Package stock contiene el motor de mutación de inventario: la regla que
// decide, según el tipo de las ubicaciones origen y destino, cómo cambian el
// stock disponible y la ubicación de cada producto al confirmar una operación.
package stock

import "github.com/stockmaster/stockmaster/internal/domain/entity"

// Apply aplica las líneas de una operación sobre el catálogo y devuelve el
// nuevo catálogo, el estado final de la operación y los IDs de producto
// omitidos por no existir. Es una función pura: no toca sus argumentos.
//
// Regla según el par (origen, destino), clasificado interno/externo:
//
//	externo → interno: stock += cantidad; el producto pasa a la ubicación destino
//	interno → externo: stock -= cantidad; la ubicación no cambia
//	interno → interno: reubicación pura; el stock no cambia
//	externo → externo: sin efecto (el modelo no representa stock externo)
//
// No hay verificación de disponibilidad ni recorte: el stock puede quedar
// negativo. Las líneas se aplican en orden y de forma acumulativa sobre la
// misma copia de trabajo. Confirmar una operación DONE es un no-op idempotente.
func Apply(op entity.Operation, products []entity.Product, locations []entity.Location) ([]entity.Product, string, []string) {
	if op.Status == entity.StatusDone {
		return products, op.Status, nil
	}

	next := make([]entity.Product, len(products))
	copy(next, products)

	srcInternal := isInternal(locations, op.SourceLocationID)
	dstInternal := isInternal(locations, op.DestLocationID)

	var skipped []string
	for _, line := range op.Lines {
		idx := indexByID(next, line.ProductID)
		if idx < 0 {
			skipped = append(skipped, line.ProductID)
			continue
		}
		p := next[idx]
		switch {
		case !srcInternal && dstInternal:
			p.Stock += line.Quantity
			p.LocationID = op.DestLocationID
		case srcInternal && !dstInternal:
			p.Stock -= line.Quantity
		case srcInternal && dstInternal:
			p.LocationID = op.DestLocationID
		}
		next[idx] = p
	}

	return next, entity.StatusDone, skipped
}

// isInternal clasifica la ubicación referenciada; una ubicación inexistente
// cuenta como externa.
func isInternal(locations []entity.Location, id string) bool {
	for i := range locations {
		if locations[i].ID == id {
			return locations[i].Kind == entity.LocationKindInternal
		}
	}
	return false
}

func indexByID(products []entity.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
