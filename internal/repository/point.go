package repository

import (
	"context"

	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/repository/dao"
)

var (
	ErrPointNotFound = dao.ErrPointNotFound
	ErrItemNotFound  = dao.ErrItemNotFound
)

type PointDAO interface {
	Insert(ctx context.Context, point dao.Point, itemIDs []uint) (dao.Point, error)
	FindByFilter(ctx context.Context, uf, city string, itemIDs []uint) ([]dao.Point, error)
	FindByID(ctx context.Context, id uint) (dao.Point, error)
	FindItemTitles(ctx context.Context, pointID uint) ([]string, error)
}

type PointRepository struct {
	dao PointDAO
}

func NewPointRepository(dao PointDAO) *PointRepository {
	return &PointRepository{
		dao: dao,
	}
}

func (r *PointRepository) domainToDao(p domain.Point) dao.Point {
	return dao.Point{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		UF:        p.UF,
		Image:     p.Image,
	}
}

func (r *PointRepository) daoToDomain(p dao.Point) domain.Point {
	return domain.Point{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		UF:        p.UF,
		Image:     p.Image,
	}
}

func (r *PointRepository) daosToDomain(daoPoints []dao.Point) []domain.Point {
	points := make([]domain.Point, len(daoPoints))
	for i, p := range daoPoints {
		points[i] = r.daoToDomain(p)
	}

	return points
}

func (r *PointRepository) Create(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(point), itemIDs)
	if err != nil {
		return domain.Point{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *PointRepository) FindByFilter(ctx context.Context, uf, city string, itemIDs []uint) ([]domain.Point, error) {
	points, err := r.dao.FindByFilter(ctx, uf, city, itemIDs)
	if err != nil {
		return nil, err
	}

	return r.daosToDomain(points), nil
}

func (r *PointRepository) FindByID(ctx context.Context, id uint) (domain.Point, error) {
	point, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Point{}, err
	}

	return r.daoToDomain(point), nil
}

func (r *PointRepository) FindItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	return r.dao.FindItemTitles(ctx, pointID)
}
