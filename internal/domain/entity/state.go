package entity

// State agrega los tres registros de la sesión (catálogo, operaciones y
// ubicaciones). Vive en memoria durante la sesión; no se persiste. Todo
// mutador reemplaza el valor completo (copy-on-write) bajo un único escritor
// lógico, de modo que un lector nunca observa un registro a medio actualizar.
type State struct {
	Products   []Product
	Operations []Operation
	Locations  []Location
}

// Clone devuelve una copia profunda del estado: slices nuevos y líneas de
// operación copiadas, para que mutar la copia no toque el original.
func (s State) Clone() State {
	next := State{
		Products:   make([]Product, len(s.Products)),
		Operations: make([]Operation, len(s.Operations)),
		Locations:  make([]Location, len(s.Locations)),
	}
	copy(next.Products, s.Products)
	copy(next.Locations, s.Locations)
	for i, op := range s.Operations {
		lines := make([]OperationLine, len(op.Lines))
		copy(lines, op.Lines)
		op.Lines = lines
		next.Operations[i] = op
	}
	return next
}
