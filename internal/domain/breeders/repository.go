package breeders

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("breeder not found")

type Repository interface {
	List(ctx context.Context) ([]Breeder, error)
	GetByID(ctx context.Context, id string) (Breeder, error)
}
