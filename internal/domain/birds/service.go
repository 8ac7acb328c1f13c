package birds

import (
	"context"
	"errors"
	"fmt"

	"bird-sightings/internal/domain/apperr"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddBird persiste el bird; si ya existe uno con el mismo nombre, lo reemplaza.
func (s *Service) AddBird(ctx context.Context, b Bird) (Bird, error) {
	if err := b.Validate(); err != nil {
		return Bird{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	saved, err := s.repo.Save(ctx, b)
	if err != nil {
		return Bird{}, fmt.Errorf("save bird: %w", err)
	}
	return saved, nil
}

func (s *Service) GetAllBirds(ctx context.Context) ([]Bird, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list birds: %w", err)
	}
	if items == nil {
		items = []Bird{}
	}
	return items, nil
}

func (s *Service) FindBirdByName(ctx context.Context, name string) (Bird, error) {
	b, ok, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Bird{}, fmt.Errorf("find bird: %w", err)
	}
	if !ok {
		return Bird{}, apperr.NotFound("Bird not found. Bird with name %s does not exist.", name)
	}
	return b, nil
}

func (s *Service) FindBirdByColor(ctx context.Context, color string) ([]Bird, error) {
	items, err := s.repo.FindByColor(ctx, color)
	if err != nil {
		return nil, fmt.Errorf("find birds by color: %w", err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("Bird not found. Bird with color %s does not exist.", color)
	}
	return items, nil
}

// DeleteBird no verifica existencia previa.
func (s *Service) DeleteBird(ctx context.Context, name string) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("delete bird: %w", err)
	}
	return nil
}
