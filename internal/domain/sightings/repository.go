package sightings

import (
	"context"

	"bird-sightings/internal/domain/birds"
)

// Repository persiste sightings indexados por ID.
type Repository interface {
	// Save inserta el sighting; si ID viene vacío el store genera un UUID.
	Save(ctx context.Context, s Sighting) (Sighting, error)

	FindAll(ctx context.Context) ([]Sighting, error)

	// FindByBird compara el snapshot completo (los cuatro campos del bird).
	FindByBird(ctx context.Context, b birds.Bird) ([]Sighting, error)

	// FindByLocation filtra por igualdad exacta.
	FindByLocation(ctx context.Context, location string) ([]Sighting, error)

	// FindByDateBetween incluye ambos extremos: start <= date <= end.
	FindByDateBetween(ctx context.Context, start, end Date) ([]Sighting, error)

	// DeleteByID es idempotente.
	DeleteByID(ctx context.Context, id string) error
}

// BirdFinder es lo único que el servicio necesita del store de birds.
type BirdFinder interface {
	FindByName(ctx context.Context, name string) (birds.Bird, bool, error)
}
