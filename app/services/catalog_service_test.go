package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarmlabs/stockpile/app/models"
)

func TestCatalogCreateAndGet(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	created, err := catalog.Create(SKUInput{
		SKU:         "PLA-BLK",
		Description: "Black PLA 1kg",
		Category:    models.CategoryFilament,
		SupplierURL: "https://example.com/pla-black",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := catalog.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "PLA-BLK", got.SKU)
	assert.Equal(t, models.CategoryFilament, got.Category)
	assert.Equal(t, "https://example.com/pla-black", got.SupplierURL)
}

func TestCatalogCreateRejectsBadCategory(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	_, err := catalog.Create(SKUInput{SKU: "X", Description: "x", Category: models.Category("spare_part")})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCatalogAllowsDuplicateCodes(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	a, err := catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "brand A", Category: models.CategoryFilament})
	require.NoError(t, err)
	b, err := catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "brand B", Category: models.CategoryFilament})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	skus, err := catalog.List()
	require.NoError(t, err)
	assert.Len(t, skus, 2)
}

func TestCatalogUpdateRewritesAllFields(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	created, err := catalog.Create(SKUInput{
		SKU:         "PLA-BLK",
		Description: "Black PLA 1kg",
		Category:    models.CategoryFilament,
		SupplierURL: "https://example.com/old",
	})
	require.NoError(t, err)

	updated, err := catalog.Update(created.ID, SKUInput{
		SKU:         "PLA-BLK-2KG",
		Description: "Black PLA 2kg",
		Category:    models.CategoryFilament,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "PLA-BLK-2KG", updated.SKU)
	assert.Equal(t, "Black PLA 2kg", updated.Description)
	assert.Empty(t, updated.SupplierURL, "update overwrites every field, omitted ones included")
}

func TestCatalogUpdateMissingID(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	_, err := catalog.Update(9999, SKUInput{SKU: "X", Description: "x", Category: models.CategoryFilament})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogDeleteMissingID(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	err := catalog.Delete(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogSetImagePath(t *testing.T) {
	catalog, _ := newCatalog(t, testDB(t))

	created, err := catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "Black PLA", Category: models.CategoryFilament})
	require.NoError(t, err)

	updated, err := catalog.SetImagePath(created.ID, "images/sku-1.png")
	require.NoError(t, err)
	assert.Equal(t, "images/sku-1.png", updated.ImagePath)
	assert.Equal(t, "PLA-BLK", updated.SKU, "image upload must not disturb other fields")
}
