package breeds

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("breed not found")

// Repository es la fuente de verdad del catálogo.
type Repository interface {
	List(ctx context.Context) ([]Breed, error)
	GetByID(ctx context.Context, id string) (Breed, error)
}

// Index es un motor de búsqueda opcional con la misma semántica que Filter.
type Index interface {
	Search(ctx context.Context, query, animal string) ([]Breed, error)
}
