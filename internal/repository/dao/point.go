package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPointNotFound = errors.New("point not found")
	ErrItemNotFound  = errors.New("item not found")
)

type Point struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"not null"`
	Whatsapp string `gorm:"not null"`

	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`

	City  string `gorm:"not null;index:idx_points_city_uf"`
	UF    string `gorm:"column:uf;not null;index:idx_points_city_uf"`
	Image string `gorm:"not null"`
}

type PointItem struct {
	ID      uint  `gorm:"primaryKey"`
	PointID uint  `gorm:"not null;index"`
	Point   Point `gorm:"foreignKey:PointID"`
	ItemID  uint  `gorm:"not null;index"`
	Item    Item  `gorm:"foreignKey:ItemID"`
}

type PointDAO struct {
	db *gorm.DB
}

func NewPointDAO(db *gorm.DB) *PointDAO {
	return &PointDAO{
		db: db,
	}
}

// Insert creates the point row and one association row per item id in a
// single transaction. Either all rows become visible together or none do.
func (d *PointDAO) Insert(ctx context.Context, point Point, itemIDs []uint) (Point, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&point); result.Error != nil {
			return result.Error
		}

		associations := make([]PointItem, len(itemIDs))
		for i, itemID := range itemIDs {
			associations[i] = PointItem{
				PointID: point.ID,
				ItemID:  itemID,
			}
		}

		if result := tx.Create(&associations); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return Point{}, ErrItemNotFound
		}

		return Point{}, err
	}

	return point, nil
}

// FindByFilter returns distinct points in the given city/uf whose
// association set intersects itemIDs. An empty itemIDs matches nothing.
func (d *PointDAO) FindByFilter(ctx context.Context, uf, city string, itemIDs []uint) ([]Point, error) {
	var points []Point

	if len(itemIDs) == 0 {
		return []Point{}, nil
	}

	result := d.db.WithContext(ctx).
		Model(&Point{}).
		Distinct("points.*").
		Joins("JOIN point_items ON point_items.point_id = points.id").
		Where("point_items.item_id IN ?", itemIDs).
		Where("points.city = ?", city).
		Where("points.uf = ?", uf).
		Find(&points)
	if result.Error != nil {
		return nil, result.Error
	}

	return points, nil
}

func (d *PointDAO) FindByID(ctx context.Context, id uint) (Point, error) {
	var point Point

	result := d.db.WithContext(ctx).First(&point, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Point{}, ErrPointNotFound
		}

		return Point{}, result.Error
	}

	return point, nil
}

// FindItemTitles returns the titles of the items associated with a point.
func (d *PointDAO) FindItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	var titles []string

	result := d.db.WithContext(ctx).
		Model(&Item{}).
		Joins("JOIN point_items ON point_items.item_id = items.id").
		Where("point_items.point_id = ?", pointID).
		Pluck("items.title", &titles)
	if result.Error != nil {
		return nil, result.Error
	}

	return titles, nil
}
