package sightings

import (
	"errors"

	"bird-sightings/internal/domain/birds"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sighting es una observación de un bird en un lugar y fecha.
// Bird es una copia del bird guardado al momento de crear la observación;
// cambios posteriores al bird no se propagan.
type Sighting struct {
	ID       string
	Bird     birds.Bird
	Location string
	Date     Date
}

// NewSighting arma un Sighting sin ID (lo asigna el store) y lo valida.
func NewSighting(bird birds.Bird, location string, date Date) (Sighting, error) {
	s := Sighting{
		Bird:     bird,
		Location: location,
		Date:     date,
	}
	if err := s.Validate(); err != nil {
		return Sighting{}, err
	}
	return s, nil
}

func (s Sighting) Validate() error {
	if err := s.Bird.Validate(); err != nil {
		return validation.Errors{"bird": err}
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Location, validation.Required.Error("location is required")),
		validation.Field(&s.Date, validation.By(requiredDate)),
	)
}

func requiredDate(value any) error {
	d, _ := value.(Date)
	if d.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
