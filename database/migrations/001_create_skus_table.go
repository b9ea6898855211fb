package migrations

import (
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/pkg/migration"
)

type createSKUsTable struct{}

func init() {
	migration.Register("001_create_skus_table", createSKUsTable{})
}

func (createSKUsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.SKU{})
}

func (createSKUsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.SKU{})
}
