package repository

import (
	"context"

	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/repository/dao"
)

type ItemDAO interface {
	FindAll(ctx context.Context) ([]dao.Item, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	daoItems, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, len(daoItems))
	for i, item := range daoItems {
		items[i] = domain.Item{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: item.ImageURL,
		}
	}

	return items, nil
}
