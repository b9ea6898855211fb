package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
)

// StockRepository persists per-SKU stock levels.
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
// handle. The ledger's read-then-write runs every repository call through the
// same transaction this way.
func (r *StockRepository) WithTx(tx *gorm.DB) *StockRepository {
	return &StockRepository{db: tx}
}

// Find returns the stock row for a SKU code. The boolean reports whether the
// row exists; absence is the normal "never transacted" state, not an error.
func (r *StockRepository) Find(code string) (models.StockLevel, bool, error) {
	var level models.StockLevel
	err := r.db.Where("sku = ?", code).First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StockLevel{}, false, nil
	}
	if err != nil {
		return models.StockLevel{}, false, err
	}
	return level, true, nil
}

// Insert creates the first stock row for a code.
func (r *StockRepository) Insert(level models.StockLevel) error {
	return r.db.Create(&level).Error
}

// UpdateQuantity overwrites the quantity of an existing stock row.
func (r *StockRepository) UpdateQuantity(code string, quantity int) error {
	return r.db.Model(&models.StockLevel{}).
		Where("sku = ?", code).
		Update("quantity", quantity).Error
}

// JoinedWithCatalog returns stock levels inner-joined with the catalog on
// SKU code. Stock rows without a catalog entry and catalog entries without a
// stock row both drop out of the result. Duplicate catalog codes each produce
// a row, all showing the same quantity.
func (r *StockRepository) JoinedWithCatalog() ([]models.InventoryRow, error) {
	rows := []models.InventoryRow{}
	err := r.db.Table("stock_levels").
		Select("skus.sku AS sku, skus.description AS description, stock_levels.quantity AS quantity").
		Joins("INNER JOIN skus ON skus.sku = stock_levels.sku").
		Order("skus.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
