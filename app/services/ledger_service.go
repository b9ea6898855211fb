package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/printfarmlabs/stockpile/app/models"
	"github.com/printfarmlabs/stockpile/app/repositories"
	"github.com/printfarmlabs/stockpile/pkg/cache"
	"github.com/printfarmlabs/stockpile/pkg/metrics"
	"github.com/printfarmlabs/stockpile/pkg/ws"
)

// Direction is the side of a stock movement.
type Direction string

const (
	DirectionReceive Direction = "receive"
	DirectionRemove  Direction = "remove"
)

// TransactionInput is the request body for a stock movement.
type TransactionInput struct {
	SKU       string `json:"sku" validate:"required,max=100"`
	Direction string `json:"direction" validate:"required,in=receive,remove"`
	Quantity  int    `json:"quantity" validate:"required,integer,gte=1"`
}

// StockEvent is broadcast on the live feed after every applied transaction.
type StockEvent struct {
	SKU       string    `json:"sku"`
	Direction Direction `json:"direction"`
	Quantity  int       `json:"quantity"`
	AppliedAt time.Time `json:"applied_at"`
}

const inventoryCacheTTL = 30 * time.Second

// LedgerService tracks quantity on hand per SKU code. Quantities are derived
// purely from transactions; there is no direct "set quantity" operation.
// Removals floor at zero rather than failing, so a miscounted removal can
// never drive stock negative.
type LedgerService struct {
	db         *gorm.DB
	stock      *repositories.StockRepository
	catalog    *repositories.SKURepository
	requireSKU bool
	feed       *ws.Hub
}

// NewLedgerService wires the ledger. requireSKU switches on strict mode:
// transactions against codes with no catalog entry are rejected instead of
// accepted. feed may be nil when no live feed is running.
func NewLedgerService(db *gorm.DB, stock *repositories.StockRepository, catalog *repositories.SKURepository, requireSKU bool, feed *ws.Hub) *LedgerService {
	return &LedgerService{
		db:         db,
		stock:      stock,
		catalog:    catalog,
		requireSKU: requireSKU,
		feed:       feed,
	}
}

// CurrentQuantity returns the on-hand quantity for a SKU code. Codes that
// have never been transacted report zero, not an error.
func (s *LedgerService) CurrentQuantity(code string) (int, error) {
	level, found, err := s.stock.Find(code)
	if err != nil {
		return 0, storageErr("read stock", err)
	}
	if !found {
		return 0, nil
	}
	return level.Quantity, nil
}

// Transact applies one stock movement and returns the resulting quantity.
//
// The read of the current level and the write of the new one run in a single
// database transaction, and whether the write is an insert or an update is
// decided by the same read: insert when no row existed, update otherwise.
// A removal larger than on-hand stock clamps the result to zero silently.
func (s *LedgerService) Transact(code string, dir Direction, qty int) (int, error) {
	if qty <= 0 {
		return 0, ErrInvalidQuantity
	}
	if dir != DirectionReceive && dir != DirectionRemove {
		return 0, fmt.Errorf("ledger: invalid direction %q", dir)
	}

	var newQty int
	var clamped bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if s.requireSKU {
			known, err := s.catalog.WithTx(tx).CodeExists(code)
			if err != nil {
				return storageErr("check sku code", err)
			}
			if !known {
				return ErrUnknownSKU
			}
		}

		stock := s.stock.WithTx(tx)
		level, found, err := stock.Find(code)
		if err != nil {
			return storageErr("read stock", err)
		}

		current := 0
		if found {
			current = level.Quantity
		}

		switch dir {
		case DirectionReceive:
			newQty = current + qty
		case DirectionRemove:
			newQty = current - qty
			if newQty < 0 {
				newQty = 0
				clamped = true
			}
		}

		if !found {
			if err := stock.Insert(models.StockLevel{SKU: code, Quantity: newQty}); err != nil {
				return storageErr("insert stock", err)
			}
			return nil
		}
		if err := stock.UpdateQuantity(code, newQty); err != nil {
			return storageErr("update stock", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.TransactionsTotal.WithLabelValues(string(dir)).Inc()
	if clamped {
		metrics.ClampedRemovalsTotal.Inc()
	}
	metrics.StockQuantity.WithLabelValues(code).Set(float64(newQty))
	_ = cache.Del(inventoryCacheKey)
	s.publish(StockEvent{SKU: code, Direction: dir, Quantity: newQty, AppliedAt: time.Now().UTC()})

	return newQty, nil
}

// ListWithCatalog returns the joined inventory view: one row per catalog
// entry whose code has a stock row, quantity zero included. Orphans on
// either side are excluded.
func (s *LedgerService) ListWithCatalog() ([]models.InventoryRow, error) {
	var cached []models.InventoryRow
	if cache.Get(inventoryCacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.stock.JoinedWithCatalog()
	if err != nil {
		return nil, storageErr("list inventory", err)
	}
	_ = cache.Set(inventoryCacheKey, rows, inventoryCacheTTL)
	return rows, nil
}

func (s *LedgerService) publish(ev StockEvent) {
	if s.feed == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.feed.Publish(payload)
}
