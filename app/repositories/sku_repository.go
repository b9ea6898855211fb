package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
)

// SKURepository persists catalog entries.
type SKURepository struct {
	db *gorm.DB
}

func NewSKURepository(db *gorm.DB) *SKURepository {
	return &SKURepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
// handle.
func (r *SKURepository) WithTx(tx *gorm.DB) *SKURepository {
	return &SKURepository{db: tx}
}

// All returns every catalog entry in insertion order.
func (r *SKURepository) All() ([]models.SKU, error) {
	var skus []models.SKU
	if err := r.db.Order("id").Find(&skus).Error; err != nil {
		return nil, err
	}
	return skus, nil
}

// FindByID returns the entry with the given ID. The boolean reports whether
// a row was found; a false result is not an error.
func (r *SKURepository) FindByID(id uint) (models.SKU, bool, error) {
	var sku models.SKU
	err := r.db.First(&sku, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SKU{}, false, nil
	}
	if err != nil {
		return models.SKU{}, false, err
	}
	return sku, true, nil
}

// CodeExists reports whether any catalog entry carries the given SKU code.
// Duplicates are allowed, so this is a pure existence check, never a lookup.
func (r *SKURepository) CodeExists(code string) (bool, error) {
	var n int64
	if err := r.db.Model(&models.SKU{}).Where("sku = ?", code).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SKURepository) Create(sku *models.SKU) error {
	return r.db.Create(sku).Error
}

// Save rewrites every column of an existing entry.
func (r *SKURepository) Save(sku *models.SKU) error {
	return r.db.Save(sku).Error
}

// Delete hard-deletes the entry and reports how many rows were removed, so
// callers can distinguish deleting an absent ID.
func (r *SKURepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.SKU{}, id)
	return res.RowsAffected, res.Error
}
