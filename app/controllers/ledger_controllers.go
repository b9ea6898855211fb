package controllers

import (
	"net/http"

	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/pkg/bind"
	"github.com/printfarmlabs/stockpile/pkg/response"
	"github.com/printfarmlabs/stockpile/pkg/router"
	"github.com/printfarmlabs/stockpile/pkg/validate"
	"github.com/printfarmlabs/stockpile/pkg/ws"
)

type LedgerController struct {
	ledger *services.LedgerService
	feed   *ws.Hub
}

func NewLedgerController(ledger *services.LedgerService, feed *ws.Hub) *LedgerController {
	return &LedgerController{ledger: ledger, feed: feed}
}

// Quantity reports the on-hand quantity for one SKU code. Codes that have
// never moved report zero.
func (c *LedgerController) Quantity(w http.ResponseWriter, r *http.Request) {
	code := router.Param(r, "sku")
	qty, err := c.ledger.CurrentQuantity(code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"sku": code, "quantity": qty})
}

// Transact applies one stock movement.
func (c *LedgerController) Transact(w http.ResponseWriter, r *http.Request) {
	var in services.TransactionInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	qty, err := c.ledger.Transact(in.SKU, services.Direction(in.Direction), in.Quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"sku":       in.SKU,
		"direction": in.Direction,
		"quantity":  qty,
	})
}

// Inventory returns the joined catalog/stock view.
func (c *LedgerController) Inventory(w http.ResponseWriter, r *http.Request) {
	rows, err := c.ledger.ListWithCatalog()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, rows)
}

// Feed upgrades to a WebSocket carrying stock events as they are applied.
func (c *LedgerController) Feed(w http.ResponseWriter, r *http.Request) {
	if c.feed == nil {
		response.Error(w, http.StatusServiceUnavailable, "live feed not running")
		return
	}
	ws.Upgrade(w, r, c.feed)
}
