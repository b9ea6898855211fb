// Package routes declares the HTTP surface. Everything under /api except
// login sits behind the bearer-token middleware; /metrics is open for the
// scraper.
package routes

import (
	"time"

	"github.com/printfarmlabs/stockpile/app/controllers"
	"github.com/printfarmlabs/stockpile/pkg/metrics"
	"github.com/printfarmlabs/stockpile/pkg/middleware"
	"github.com/printfarmlabs/stockpile/pkg/router"
)

func RegisterAPI(r *router.Router, auth *controllers.AuthController, catalog *controllers.CatalogController, ledger *controllers.LedgerController) {
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Post("/login", "auth.login", auth.Login, middleware.RateLimit(10, time.Minute))

	protected := api.Group("", middleware.Auth)

	protected.Get("/skus", "skus.index", catalog.Index)
	protected.Post("/skus", "skus.store", catalog.Store)
	protected.Get("/skus/{id}", "skus.show", catalog.Show)
	protected.Put("/skus/{id}", "skus.update", catalog.Update)
	protected.Delete("/skus/{id}", "skus.destroy", catalog.Destroy)
	protected.Post("/skus/{id}/image", "skus.image", catalog.UploadImage)

	protected.Get("/stock/{sku}", "stock.quantity", ledger.Quantity)
	protected.Post("/transactions", "transactions.store", ledger.Transact)
	protected.Get("/inventory", "inventory.index", ledger.Inventory)
	protected.Get("/inventory/feed", "inventory.feed", ledger.Feed)
}
