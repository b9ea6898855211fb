package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the catalog and ledger services. Controllers
// map these to HTTP statuses with errors.Is.
var (
	ErrNotFound        = errors.New("sku not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrUnknownSKU      = errors.New("unknown sku code")
	ErrBadCredentials  = errors.New("invalid credentials")
	ErrStorage         = errors.New("storage failure")
)

// storageErr wraps a database error under ErrStorage so callers see one
// stable sentinel regardless of the driver behind it.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
