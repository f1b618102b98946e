package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// Withdrawal is a seller's request to take funds out of their balance.
// The balance is validated at request time but only debited at approval
// time, where it is re-validated atomically.
type Withdrawal struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Amount      decimal.Decimal
	Status      WithdrawalStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}
