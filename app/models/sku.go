package models

import "time"

// Category classifies a consumable part.
type Category string

const (
	CategoryFilament   Category = "filament"
	CategoryConsumable Category = "consumable"
	CategoryWearPart   Category = "wear_part"
)

// Categories returns the closed set of valid categories.
func Categories() []Category {
	return []Category{CategoryFilament, CategoryConsumable, CategoryWearPart}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFilament, CategoryConsumable, CategoryWearPart:
		return true
	}
	return false
}

// SKU is one catalog entry. The numeric ID is the stable identity used by
// catalog operations; the SKU code is the operator-chosen string the stock
// ledger keys on. Codes are intentionally NOT unique — the catalog accepts
// duplicates and the ledger resolves by code value.
//
// Rows are hard-deleted: a deleted SKU must be observable as absent, and its
// stock row (if any) is deliberately left behind.
type SKU struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SKU         string    `gorm:"size:100;not null;index" json:"sku"`
	Description string    `gorm:"type:text" json:"description"`
	Category    Category  `gorm:"size:50;not null" json:"category"`
	SupplierURL string    `gorm:"size:2048" json:"supplier_url"`
	ImagePath   string    `gorm:"size:1024" json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SKU) TableName() string { return "skus" }

// StockLevel is the quantity-on-hand row for one SKU code. A row exists only
// after the first transaction against the code; quantity never goes below
// zero.
type StockLevel struct {
	SKU      string `gorm:"primaryKey;size:100" json:"sku"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`
}

func (StockLevel) TableName() string { return "stock_levels" }

// InventoryRow is one row of the joined inventory view: stock levels matched
// with their catalog entry by SKU code.
type InventoryRow struct {
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}
