package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"yield-ai/internal/domain/recognition"
)

type uploadRepo struct {
	mu       sync.RWMutex
	uploads  map[string]recognition.Upload
	analyses map[string][]recognition.Analysis
}

func NewUploadRepo() recognition.Repository {
	return &uploadRepo{
		uploads:  make(map[string]recognition.Upload),
		analyses: make(map[string][]recognition.Analysis),
	}
}

func (r *uploadRepo) SaveUpload(ctx context.Context, u recognition.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("upload id required")
	}
	r.uploads[u.ID] = u
	return nil
}

func (r *uploadRepo) GetUpload(ctx context.Context, id string) (recognition.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.uploads[id]
	if !ok {
		return recognition.Upload{}, recognition.ErrNotFound
	}
	return u, nil
}

func (r *uploadRepo) DeleteUpload(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.uploads[id]; !ok {
		return recognition.ErrNotFound
	}
	delete(r.uploads, id)
	delete(r.analyses, id)
	return nil
}

func (r *uploadRepo) SaveAnalysis(ctx context.Context, a recognition.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// la imagen pudo descartarse mientras se analizaba
	if _, ok := r.uploads[a.UploadID]; !ok {
		return recognition.ErrNotFound
	}
	r.analyses[a.UploadID] = append(r.analyses[a.UploadID], a)
	return nil
}

func (r *uploadRepo) LatestAnalysis(ctx context.Context, uploadID string) (recognition.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.analyses[uploadID]
	if len(list) == 0 {
		return recognition.Analysis{}, recognition.ErrNotFound
	}
	return list[len(list)-1], nil
}
