package service

import (
	"context"
	"fmt"

	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/repository"
)

var (
	ErrPointNotFound = repository.ErrPointNotFound
	ErrItemNotFound  = repository.ErrItemNotFound
)

type PointRepository interface {
	Create(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error)
	FindByFilter(ctx context.Context, uf, city string, itemIDs []uint) ([]domain.Point, error)
	FindByID(ctx context.Context, id uint) (domain.Point, error)
	FindItemTitles(ctx context.Context, pointID uint) ([]string, error)
}

type PointService struct {
	repo         PointRepository
	defaultImage string
}

func NewPointService(repo PointRepository, defaultImage string) *PointService {
	return &PointService{
		repo:         repo,
		defaultImage: defaultImage,
	}
}

// CreatePoint persists a point together with its item associations.
// The image URL is always set server-side.
func (s *PointService) CreatePoint(ctx context.Context, point domain.Point, itemIDs []uint) (domain.Point, error) {
	point.Image = s.defaultImage

	created, err := s.repo.Create(ctx, point, itemIDs)
	if err != nil {
		return domain.Point{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PointService) ListPoints(ctx context.Context, uf, city string, itemIDs []uint) ([]domain.Point, error) {
	points, err := s.repo.FindByFilter(ctx, uf, city, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFilter -> %w", err)
	}

	return points, nil
}

// GetPoint returns a point and the titles of its associated items.
func (s *PointService) GetPoint(ctx context.Context, id uint) (domain.PointDetail, error) {
	point, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.PointDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	titles, err := s.repo.FindItemTitles(ctx, id)
	if err != nil {
		return domain.PointDetail{}, fmt.Errorf("s.repo.FindItemTitles -> %w", err)
	}

	return domain.PointDetail{
		Point: point,
		Items: titles,
	}, nil
}
