package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/app/repositories"
)

func newLedger(db *gorm.DB, requireSKU bool) *LedgerService {
	return NewLedgerService(db,
		repositories.NewStockRepository(db),
		repositories.NewSKURepository(db),
		requireSKU, nil)
}

func TestTransactReceiveCreatesRow(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)

	qty, err := ledger.Transact("PLA-BLK", DirectionReceive, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	var level models.StockLevel
	require.NoError(t, db.Where("sku = ?", "PLA-BLK").First(&level).Error)
	assert.Equal(t, 10, level.Quantity)
}

func TestTransactRemoveClampsAtZero(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)

	// The lifecycle of one spool code: receive ten, remove three, then
	// over-remove fifty. The last movement floors at zero without error.
	qty, err := ledger.Transact("PLA-BLK", DirectionReceive, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	qty, err = ledger.Transact("PLA-BLK", DirectionRemove, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	qty, err = ledger.Transact("PLA-BLK", DirectionRemove, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	got, err := ledger.CurrentQuantity("PLA-BLK")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestTransactRemoveFromEmptyStaysZero(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)

	// Removing from a never-seen code creates the row at zero rather than
	// failing or going negative.
	qty, err := ledger.Transact("TPU-RED", DirectionRemove, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	var n int64
	require.NoError(t, db.Model(&models.StockLevel{}).Where("sku = ?", "TPU-RED").Count(&n).Error)
	assert.EqualValues(t, 1, n, "first transaction must insert a row even when clamped")
}

func TestTransactSecondMovementUpdatesNotInserts(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)

	_, err := ledger.Transact("NOZZLE-04", DirectionReceive, 2)
	require.NoError(t, err)
	_, err = ledger.Transact("NOZZLE-04", DirectionReceive, 3)
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&models.StockLevel{}).Where("sku = ?", "NOZZLE-04").Count(&n).Error)
	assert.EqualValues(t, 1, n, "repeat transactions must update the existing row")

	got, err := ledger.CurrentQuantity("NOZZLE-04")
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestTransactRejectsNonPositiveQuantity(t *testing.T) {
	ledger := newLedger(testDB(t), false)

	for _, qty := range []int{0, -1, -100} {
		_, err := ledger.Transact("PLA-BLK", DirectionReceive, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "qty=%d", qty)
	}
}

func TestTransactRejectsUnknownDirection(t *testing.T) {
	ledger := newLedger(testDB(t), false)

	_, err := ledger.Transact("PLA-BLK", Direction("adjust"), 1)
	assert.Error(t, err)
}

func TestCurrentQuantityUnknownCodeIsZero(t *testing.T) {
	ledger := newLedger(testDB(t), false)

	qty, err := ledger.CurrentQuantity("NEVER-SEEN")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestTransactUnknownCodePermissiveByDefault(t *testing.T) {
	ledger := newLedger(testDB(t), false)

	qty, err := ledger.Transact("NOT-IN-CATALOG", DirectionReceive, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, qty)
}

func TestTransactUnknownCodeRejectedInStrictMode(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, true)

	_, err := ledger.Transact("NOT-IN-CATALOG", DirectionReceive, 4)
	assert.ErrorIs(t, err, ErrUnknownSKU)

	catalog, _ := newCatalog(t, db)
	_, err = catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "Black PLA 1kg", Category: models.CategoryFilament})
	require.NoError(t, err)

	qty, err := ledger.Transact("PLA-BLK", DirectionReceive, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
}

func TestListWithCatalogJoinsOnCode(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)
	catalog, _ := newCatalog(t, db)

	_, err := catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "Black PLA 1kg", Category: models.CategoryFilament})
	require.NoError(t, err)
	_, err = catalog.Create(SKUInput{SKU: "NOZZLE-04", Description: "0.4mm brass nozzle", Category: models.CategoryWearPart})
	require.NoError(t, err)
	// Catalog entry with no stock row: must not appear in the view.
	_, err = catalog.Create(SKUInput{SKU: "GLUE-STICK", Description: "Bed adhesive", Category: models.CategoryConsumable})
	require.NoError(t, err)

	_, err = ledger.Transact("PLA-BLK", DirectionReceive, 10)
	require.NoError(t, err)
	_, err = ledger.Transact("PLA-BLK", DirectionRemove, 50) // clamps to zero
	require.NoError(t, err)
	_, err = ledger.Transact("NOZZLE-04", DirectionReceive, 6)
	require.NoError(t, err)
	// Stock row with no catalog entry: must not appear either.
	_, err = ledger.Transact("MYSTERY", DirectionReceive, 99)
	require.NoError(t, err)

	rows, err := ledger.ListWithCatalog()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "PLA-BLK", rows[0].SKU)
	assert.Equal(t, "Black PLA 1kg", rows[0].Description)
	assert.Equal(t, 0, rows[0].Quantity, "zero-quantity rows stay visible in the view")
	assert.Equal(t, "NOZZLE-04", rows[1].SKU)
	assert.Equal(t, 6, rows[1].Quantity)
}

func TestListWithCatalogDuplicateCodesShareQuantity(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)
	catalog, _ := newCatalog(t, db)

	_, err := catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "Black PLA, brand A", Category: models.CategoryFilament})
	require.NoError(t, err)
	_, err = catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "Black PLA, brand B", Category: models.CategoryFilament})
	require.NoError(t, err)

	_, err = ledger.Transact("PLA-BLK", DirectionReceive, 7)
	require.NoError(t, err)

	rows, err := ledger.ListWithCatalog()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 7, rows[0].Quantity)
	assert.Equal(t, 7, rows[1].Quantity)
}

func TestDeleteCatalogEntryPreservesStockRow(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db, false)
	catalog, _ := newCatalog(t, db)

	created, err := catalog.Create(SKUInput{SKU: "PLA-BLK", Description: "Black PLA 1kg", Category: models.CategoryFilament})
	require.NoError(t, err)
	_, err = ledger.Transact("PLA-BLK", DirectionReceive, 10)
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(created.ID))

	// The stock row survives as an orphan and drops out of the joined view.
	qty, err := ledger.CurrentQuantity("PLA-BLK")
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	rows, err := ledger.ListWithCatalog()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
