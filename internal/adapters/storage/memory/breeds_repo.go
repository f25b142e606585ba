package memory

import (
	"context"
	"sync"

	"yield-ai/internal/domain/breeds"
)

// breedRepo guarda el catálogo en orden de seed. Solo lectura después de construido.
type breedRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]breeds.Breed
}

// NewBreedRepo arma el repo con los registros dados (normalmente breeds.Seed()).
func NewBreedRepo(records []breeds.Breed) breeds.Repository {
	r := &breedRepo{
		order: make([]string, 0, len(records)),
		byID:  make(map[string]breeds.Breed, len(records)),
	}
	for _, b := range records {
		if _, dup := r.byID[b.ID]; dup {
			continue
		}
		r.order = append(r.order, b.ID)
		r.byID[b.ID] = b
	}
	return r
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *breedRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	return b, nil
}
