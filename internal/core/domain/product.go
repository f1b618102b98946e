package domain

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Product is the stock pool the order aggregate draws from. Confirming an
// order item decrements Stock through an atomic conditional update; the
// core must never over-allocate it.
type Product struct {
	ID       uuid.UUID
	SellerID uuid.UUID
	Name     string
	Price    decimal.Decimal
	Stock    int
}
