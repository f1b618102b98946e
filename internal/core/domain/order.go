package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out for delivery"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusConfirmed ItemStatus = "confirmed"
	ItemStatusCancelled ItemStatus = "cancelled"
	ItemStatusCompleted ItemStatus = "completed"
)

type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	// Price is the per-unit price snapshotted at checkout.
	Price  decimal.Decimal
	Status ItemStatus
}

type Order struct {
	ID         uuid.UUID
	BuyerID    uuid.UUID
	SellerID   uuid.UUID
	Items      []OrderItem
	TotalPrice decimal.Decimal
	// Address snapshots are copied at checkout and never re-derived.
	DeliveryAddress string
	SellerAddress   string
	Status          OrderStatus
	CreatedAt       time.Time
}

// shippingTransitions is the forward-only shipping status map.
// Cancellation is reachable from pending and confirmed only; in particular
// a completed order can never become cancelled.
var shippingTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:        {OrderStatusOutForDelivery},
	OrderStatusOutForDelivery: {OrderStatusCompleted},
}

// CanTransitionTo reports whether the shipping status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range shippingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DeriveOrderStatus computes the order status consistent with its item
// statuses. It is the single source of truth after item mutations
// (accept/cancel) while the order is still in the pending/confirmed phase;
// shipping-level statuses are advanced through the transition map instead.
func DeriveOrderStatus(items []OrderItem) OrderStatus {
	if len(items) == 0 {
		return OrderStatusPending
	}

	var pending, confirmed, cancelled, completed int
	for _, item := range items {
		switch item.Status {
		case ItemStatusPending:
			pending++
		case ItemStatusConfirmed:
			confirmed++
		case ItemStatusCancelled:
			cancelled++
		case ItemStatusCompleted:
			completed++
		}
	}

	switch {
	case cancelled == len(items):
		return OrderStatusCancelled
	case cancelled+completed == len(items):
		return OrderStatusCompleted
	case confirmed > 0:
		return OrderStatusConfirmed
	default:
		return OrderStatusPending
	}
}
