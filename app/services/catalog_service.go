package services

import (
	"time"

	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/app/repositories"
	"github.com/printfarmlabs/stockpile/pkg/cache"
)

const (
	catalogCacheKey   = "catalog:skus"
	inventoryCacheKey = "inventory:view"
	catalogCacheTTL   = 5 * time.Minute
)

// SKUInput carries the writable fields of a catalog entry. Create and Update
// both take the full set; Update rewrites every field.
type SKUInput struct {
	SKU         string          `json:"sku" validate:"required,max=100"`
	Description string          `json:"description" validate:"required"`
	Category    models.Category `json:"category" validate:"required,in=filament,consumable,wear_part"`
	SupplierURL string          `json:"supplier_url" validate:"nullable,url,max=2048"`
	ImagePath   string          `json:"image_path" validate:"nullable,max=1024"`
}

// CatalogService implements the SKU catalog: list, create, read, update and
// delete entries. It deliberately knows nothing about stock levels; deleting
// an entry leaves any stock row for its code untouched.
type CatalogService struct {
	repo *repositories.SKURepository
}

func NewCatalogService(repo *repositories.SKURepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns every catalog entry, duplicates included, in insertion order.
func (s *CatalogService) List() ([]models.SKU, error) {
	var cached []models.SKU
	if cache.Get(catalogCacheKey, &cached) {
		return cached, nil
	}

	skus, err := s.repo.All()
	if err != nil {
		return nil, storageErr("list skus", err)
	}
	_ = cache.Set(catalogCacheKey, skus, catalogCacheTTL)
	return skus, nil
}

// Create adds a catalog entry. Duplicate SKU codes are accepted without
// complaint; only the category is constrained.
func (s *CatalogService) Create(in SKUInput) (models.SKU, error) {
	if !in.Category.Valid() {
		return models.SKU{}, ErrInvalidCategory
	}

	sku := models.SKU{
		SKU:         in.SKU,
		Description: in.Description,
		Category:    in.Category,
		SupplierURL: in.SupplierURL,
		ImagePath:   in.ImagePath,
	}
	if err := s.repo.Create(&sku); err != nil {
		return models.SKU{}, storageErr("create sku", err)
	}

	s.invalidate()
	return sku, nil
}

// Get returns one entry by ID.
func (s *CatalogService) Get(id uint) (models.SKU, error) {
	sku, found, err := s.repo.FindByID(id)
	if err != nil {
		return models.SKU{}, storageErr("find sku", err)
	}
	if !found {
		return models.SKU{}, ErrNotFound
	}
	return sku, nil
}

// Update rewrites all writable fields of an existing entry, including the
// SKU code itself. Renaming a code does not touch stock rows; the old code's
// stock simply stops joining against this entry.
func (s *CatalogService) Update(id uint, in SKUInput) (models.SKU, error) {
	if !in.Category.Valid() {
		return models.SKU{}, ErrInvalidCategory
	}

	sku, err := s.Get(id)
	if err != nil {
		return models.SKU{}, err
	}

	sku.SKU = in.SKU
	sku.Description = in.Description
	sku.Category = in.Category
	sku.SupplierURL = in.SupplierURL
	sku.ImagePath = in.ImagePath
	if err := s.repo.Save(&sku); err != nil {
		return models.SKU{}, storageErr("update sku", err)
	}

	s.invalidate()
	return sku, nil
}

// SetImagePath records the stored image location for an entry.
func (s *CatalogService) SetImagePath(id uint, path string) (models.SKU, error) {
	sku, err := s.Get(id)
	if err != nil {
		return models.SKU{}, err
	}

	sku.ImagePath = path
	if err := s.repo.Save(&sku); err != nil {
		return models.SKU{}, storageErr("update sku image", err)
	}

	s.invalidate()
	return sku, nil
}

// Delete removes an entry by ID. Deleting an absent ID is an error, not a
// no-op. Stock rows keyed by the entry's code are left in place.
func (s *CatalogService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return storageErr("delete sku", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.invalidate()
	return nil
}

func (s *CatalogService) invalidate() {
	_ = cache.Del(catalogCacheKey, inventoryCacheKey)
}
