package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/app/repositories"
	"github.com/printfarmlabs/stockpile/pkg/database"
)

var testDBSeq int64

// testDB opens a fresh in-memory sqlite store per test. The named shared
// cache keeps all pooled connections on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.SKU{}, &models.StockLevel{}))
	return db
}

func newCatalog(t *testing.T, db *gorm.DB) (*CatalogService, *repositories.SKURepository) {
	t.Helper()
	repo := repositories.NewSKURepository(db)
	return NewCatalogService(repo), repo
}
