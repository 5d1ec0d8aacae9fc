package dao

import (
	"context"

	"gorm.io/gorm"
)

type Item struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	ImageURL string `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}
