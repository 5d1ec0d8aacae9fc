package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoleta-app/api/internal/domain"
	"github.com/ecoleta-app/api/internal/repository/dao"
)

type stubPointDAO struct {
	insertFn func(ctx context.Context, point dao.Point, itemIDs []uint) (dao.Point, error)
	filterFn func(ctx context.Context, uf, city string, itemIDs []uint) ([]dao.Point, error)
}

func (s *stubPointDAO) Insert(ctx context.Context, point dao.Point, itemIDs []uint) (dao.Point, error) {
	return s.insertFn(ctx, point, itemIDs)
}

func (s *stubPointDAO) FindByFilter(ctx context.Context, uf, city string, itemIDs []uint) ([]dao.Point, error) {
	return s.filterFn(ctx, uf, city, itemIDs)
}

func (s *stubPointDAO) FindByID(ctx context.Context, id uint) (dao.Point, error) {
	return dao.Point{}, nil
}

func (s *stubPointDAO) FindItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	return nil, nil
}

func TestPointRepositoryCreateMapsBothWays(t *testing.T) {
	stub := &stubPointDAO{
		insertFn: func(ctx context.Context, point dao.Point, itemIDs []uint) (dao.Point, error) {
			assert.Equal(t, "Mercado do Zé", point.Name)
			assert.Equal(t, "SP", point.UF)
			assert.Equal(t, []uint{1, 2}, itemIDs)

			point.ID = 42
			return point, nil
		},
	}
	repo := NewPointRepository(stub)

	created, err := repo.Create(context.Background(), domain.Point{
		Name:      "Mercado do Zé",
		Email:     "ze@example.com",
		Whatsapp:  "11999998888",
		Latitude:  -23.5329,
		Longitude: -46.7917,
		City:      "Osasco",
		UF:        "SP",
		Image:     "https://example.com/point.jpg",
	}, []uint{1, 2})
	require.NoError(t, err)

	assert.EqualValues(t, 42, created.ID)
	assert.Equal(t, "ze@example.com", created.Email)
	assert.Equal(t, -23.5329, created.Latitude)
	assert.Equal(t, "Osasco", created.City)
}

func TestPointRepositoryFindByFilterMapsSlice(t *testing.T) {
	stub := &stubPointDAO{
		filterFn: func(ctx context.Context, uf, city string, itemIDs []uint) ([]dao.Point, error) {
			return []dao.Point{
				{ID: 1, Name: "A", City: city, UF: uf},
				{ID: 2, Name: "B", City: city, UF: uf},
			}, nil
		},
	}
	repo := NewPointRepository(stub)

	points, err := repo.FindByFilter(context.Background(), "SP", "Osasco", []uint{1})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, domain.Point{ID: 1, Name: "A", City: "Osasco", UF: "SP"}, points[0])
}
