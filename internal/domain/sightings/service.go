package sightings

import (
	"context"
	"errors"
	"fmt"

	"bird-sightings/internal/domain/apperr"
	"bird-sightings/internal/domain/birds"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo  Repository
	birds BirdFinder
}

func NewService(repo Repository, birdFinder BirdFinder) *Service {
	return &Service{repo: repo, birds: birdFinder}
}

// AddSighting exige que el bird exista. El bird embebido se reemplaza por el
// guardado: del bird recibido sólo se usa Name.
func (s *Service) AddSighting(ctx context.Context, in Sighting) (Sighting, error) {
	if err := in.Validate(); err != nil {
		return Sighting{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, ok, err := s.birds.FindByName(ctx, in.Bird.Name)
	if err != nil {
		return Sighting{}, fmt.Errorf("find bird: %w", err)
	}
	if !ok {
		return Sighting{}, apperr.NotFound("Bird not found. Cannot add sighting.")
	}

	in.Bird = stored
	saved, err := s.repo.Save(ctx, in)
	if err != nil {
		return Sighting{}, fmt.Errorf("save sighting: %w", err)
	}
	return saved, nil
}

func (s *Service) GetAllSightings(ctx context.Context) ([]Sighting, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sightings: %w", err)
	}
	if items == nil {
		items = []Sighting{}
	}
	return items, nil
}

func (s *Service) GetSightingsByBird(ctx context.Context, b birds.Bird) ([]Sighting, error) {
	items, err := s.repo.FindByBird(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("find sightings by bird: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("Sighting not found. Sighting for bird with name %s does not exist.", b.Name)
	}
	return items, nil
}

func (s *Service) GetSightingsByLocation(ctx context.Context, location string) ([]Sighting, error) {
	items, err := s.repo.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("find sightings by location: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("Sighting not found. Sighting for location %s does not exist.", location)
	}
	return items, nil
}

// GetSightingsByDateBetween es inclusivo. start > end devuelve NotFound (rango vacío).
func (s *Service) GetSightingsByDateBetween(ctx context.Context, start, end Date) ([]Sighting, error) {
	items, err := s.repo.FindByDateBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("find sightings by date: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("Sighting not found. Sighting between %s and %s does not exist.", start, end)
	}
	return items, nil
}

func (s *Service) DeleteSighting(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete sighting: %w", err)
	}
	return nil
}
