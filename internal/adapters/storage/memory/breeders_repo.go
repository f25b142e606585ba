package memory

import (
	"context"
	"sync"

	"yield-ai/internal/domain/breeders"
)

type breederRepo struct {
	mu      sync.RWMutex
	records []breeders.Breeder
}

func NewBreederRepo(records []breeders.Breeder) breeders.Repository {
	return &breederRepo{records: append([]breeders.Breeder(nil), records...)}
}

func (r *breederRepo) List(ctx context.Context) ([]breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeders.Breeder, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *breederRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.records {
		if b.ID == id {
			return b, nil
		}
	}
	return breeders.Breeder{}, breeders.ErrNotFound
}
