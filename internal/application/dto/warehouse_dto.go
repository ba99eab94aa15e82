package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

// AddLocationRequest alta de una bodega interna; el ID y el tipo (INTERNAL)
// los asigna el caso de uso.
type AddLocationRequest struct {
	Name string
}

// Validate aplica las reglas de entrada.
func (r AddLocationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("el nombre de la bodega es obligatorio"),
			validation.Length(1, 80),
		),
	)
}
