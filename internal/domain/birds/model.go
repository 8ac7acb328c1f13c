package birds

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Bird es el registro de una especie. Name es la clave primaria:
// guardar un Bird con un Name existente lo sobreescribe.
type Bird struct {
	Name   string
	Color  string
	Weight string
	Height string
}

// Validate exige la clave; el resto de campos es libre.
func (b Bird) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required.Error("name is required")),
	)
}
