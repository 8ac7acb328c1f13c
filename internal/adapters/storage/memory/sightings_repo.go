package memory

import (
	"context"
	"sync"

	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"

	"github.com/google/uuid"
)

type sightingRepo struct {
	mu    sync.RWMutex
	byID  map[string]sightings.Sighting
	order []string
}

func NewSightingRepo() sightings.Repository {
	return &sightingRepo{
		byID: make(map[string]sightings.Sighting),
	}
}

func (r *sightingRepo) Save(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, exists := r.byID[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
	return s, nil
}

func (r *sightingRepo) FindAll(ctx context.Context) ([]sightings.Sighting, error) {
	return r.filter(func(sightings.Sighting) bool { return true }), nil
}

func (r *sightingRepo) FindByBird(ctx context.Context, b birds.Bird) ([]sightings.Sighting, error) {
	return r.filter(func(s sightings.Sighting) bool { return s.Bird == b }), nil
}

func (r *sightingRepo) FindByLocation(ctx context.Context, location string) ([]sightings.Sighting, error) {
	return r.filter(func(s sightings.Sighting) bool { return s.Location == location }), nil
}

func (r *sightingRepo) FindByDateBetween(ctx context.Context, start, end sightings.Date) ([]sightings.Sighting, error) {
	return r.filter(func(s sightings.Sighting) bool { return s.Date.Between(start, end) }), nil
}

func (r *sightingRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *sightingRepo) filter(keep func(sightings.Sighting) bool) []sightings.Sighting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sightings.Sighting, 0)
	for _, id := range r.order {
		if s := r.byID[id]; keep(s) {
			out = append(out, s)
		}
	}
	return out
}
