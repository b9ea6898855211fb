package seeders

import (
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
)

type catalogSeeder struct{}

func init() {
	Register(catalogSeeder{})
}

func (catalogSeeder) Name() string { return "catalog" }

// Run inserts a starter print-farm catalog. Skips entirely when the catalog
// already holds entries, so re-running seed is safe.
func (catalogSeeder) Run(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.SKU{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	starter := []models.SKU{
		{SKU: "PLA-BLK", Description: "Black PLA filament, 1kg spool", Category: models.CategoryFilament, SupplierURL: "https://example.com/pla-black"},
		{SKU: "PLA-WHT", Description: "White PLA filament, 1kg spool", Category: models.CategoryFilament, SupplierURL: "https://example.com/pla-white"},
		{SKU: "PETG-CLR", Description: "Clear PETG filament, 1kg spool", Category: models.CategoryFilament},
		{SKU: "NOZZLE-04", Description: "0.4mm brass nozzle", Category: models.CategoryWearPart},
		{SKU: "PTFE-TUBE", Description: "PTFE bowden tube, 1m", Category: models.CategoryWearPart},
		{SKU: "GLUE-STICK", Description: "Bed adhesion glue stick", Category: models.CategoryConsumable},
		{SKU: "IPA-1L", Description: "Isopropyl alcohol, 1 litre", Category: models.CategoryConsumable},
	}
	return db.Create(&starter).Error
}
