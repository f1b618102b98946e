package domain

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// FlatServiceFee is the fixed platform cut deducted from an order total
// before the remainder is credited to the seller.
var FlatServiceFee = decimal.MustNew(50, 0)

// SellerBalance is the per-seller running balance. Current never goes
// negative; debits are guarded by an atomic conditional update.
type SellerBalance struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	BankNumber string
	Current    decimal.Decimal
}
