package breeds

import (
	"context"
	"errors"
	"strings"

	"yield-ai/internal/platform/logger"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo  Repository
	index Index // opcional
	log   logger.Logger
}

// NewService crea el servicio. index puede ser nil: en ese caso se filtra en memoria.
func NewService(repo Repository, index Index, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:  repo,
		index: index,
		log:   log.With(map[string]any{"component": "breeds"}),
	}
}

// Search aplica el filtro de texto + categoría.
// Si hay índice lo usa; si el índice falla se cae al filtro en memoria.
func (s *Service) Search(ctx context.Context, query, animal string) ([]Breed, error) {
	if s.index != nil {
		items, err := s.index.Search(ctx, query, animal)
		if err == nil {
			return items, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn("breed index search failed, falling back to memory filter", map[string]any{
			"error": err,
			"query": query,
		})
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, query, animal), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breed{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve el catálogo completo (orden de seed).
func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.repo.List(ctx)
}
