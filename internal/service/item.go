package service

import (
	"context"
	"fmt"

	"github.com/ecoleta-app/api/internal/domain"
)

type ItemRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
}

type ItemService struct {
	repo ItemRepository
}

func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

func (s *ItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}
