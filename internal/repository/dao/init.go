package dao

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Item{},
		&Point{},
		&PointItem{},
	)
}

// seedCatalog lists the item categories the application ships with.
// Image URLs are composed against the configured asset base URL.
var seedCatalog = []struct {
	Title string
	Image string
}{
	{"Lâmpadas", "lampadas.svg"},
	{"Pilhas e Baterias", "baterias.svg"},
	{"Papéis e Papelão", "papeis-papelao.svg"},
	{"Resíduos Eletrônicos", "eletronicos.svg"},
	{"Resíduos Orgânicos", "organicos.svg"},
	{"Óleo de Cozinha", "oleo.svg"},
}

// SeedItems inserts the static item catalog. Rows that already exist
// are left untouched, so it is safe to call on every startup.
func SeedItems(db *gorm.DB, assetBaseURL string) error {
	for i, entry := range seedCatalog {
		item := Item{
			ID:       uint(i + 1),
			Title:    entry.Title,
			ImageURL: fmt.Sprintf("%v/%v", assetBaseURL, entry.Image),
		}

		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
		if result.Error != nil {
			return fmt.Errorf("failed to seed item %q -> %w", entry.Title, result.Error)
		}
	}

	return nil
}
