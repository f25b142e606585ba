package memory

import (
	"context"
	"sync"

	"yield-ai/internal/domain/contact"
)

type contactRepo struct {
	mu    sync.RWMutex
	items []contact.Submission
}

func NewContactRepo() contact.Repository {
	return &contactRepo{}
}

func (r *contactRepo) Save(ctx context.Context, s contact.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
	return nil
}

func (r *contactRepo) List(ctx context.Context, limit int) ([]contact.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contact.Submission, 0, min(limit, len(r.items)))
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
