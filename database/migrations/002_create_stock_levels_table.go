package migrations

import (
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/pkg/migration"
)

// Stock levels carry no foreign key to skus on purpose: the ledger accepts
// codes the catalog has never seen, and catalog deletes must not cascade.
type createStockLevelsTable struct{}

func init() {
	migration.Register("002_create_stock_levels_table", createStockLevelsTable{})
}

func (createStockLevelsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.StockLevel{})
}

func (createStockLevelsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.StockLevel{})
}
