package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

// OrderTracking carries the public order code and payment settlement state
// for exactly one order, independent of the order's shipping status.
type OrderTracking struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	Code          string
	PaymentStatus PaymentStatus
	// CreditedAt is stamped in the same store transaction as the seller
	// balance credit. A non-nil value with PaymentStatus still Pending marks
	// a settlement stuck between steps, picked up by reconciliation.
	CreditedAt *time.Time
	CreatedAt  time.Time
}
