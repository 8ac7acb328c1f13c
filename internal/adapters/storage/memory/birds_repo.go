package memory

import (
	"context"
	"sync"

	"bird-sightings/internal/domain/birds"
)

type birdRepo struct {
	mu     sync.RWMutex
	byName map[string]birds.Bird
	order  []string // orden de primera inserción
}

func NewBirdRepo() birds.Repository {
	return &birdRepo{
		byName: make(map[string]birds.Bird),
	}
}

func (r *birdRepo) Save(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[b.Name]; !exists {
		r.order = append(r.order, b.Name)
	}
	r.byName[b.Name] = b
	return b, nil
}

func (r *birdRepo) FindAll(ctx context.Context) ([]birds.Bird, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]birds.Bird, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out, nil
}

func (r *birdRepo) FindByName(ctx context.Context, name string) (birds.Bird, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byName[name]
	return b, ok, nil
}

func (r *birdRepo) FindByColor(ctx context.Context, color string) ([]birds.Bird, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]birds.Bird, 0)
	for _, name := range r.order {
		if b := r.byName[name]; b.Color == color {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *birdRepo) DeleteByName(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; !exists {
		return nil
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
