package breeders

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, location, specialty string) ([]Breeder, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, location, specialty), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Breeder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breeder{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
