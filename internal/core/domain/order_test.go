package domain_test

import (
	"testing"

	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func items(statuses ...domain.ItemStatus) []domain.OrderItem {
	result := make([]domain.OrderItem, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, domain.OrderItem{Status: s})
	}
	return result
}

func TestDeriveOrderStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.OrderItem
		exp   domain.OrderStatus
	}{
		{
			name:  "no items",
			items: nil,
			exp:   domain.OrderStatusPending,
		},
		{
			name:  "all pending",
			items: items(domain.ItemStatusPending, domain.ItemStatusPending),
			exp:   domain.OrderStatusPending,
		},
		{
			name:  "one confirmed lifts the order",
			items: items(domain.ItemStatusPending, domain.ItemStatusConfirmed),
			exp:   domain.OrderStatusConfirmed,
		},
		{
			name:  "confirmed beside cancelled",
			items: items(domain.ItemStatusConfirmed, domain.ItemStatusCancelled),
			exp:   domain.OrderStatusConfirmed,
		},
		{
			name:  "all cancelled",
			items: items(domain.ItemStatusCancelled, domain.ItemStatusCancelled),
			exp:   domain.OrderStatusCancelled,
		},
		{
			name:  "all completed",
			items: items(domain.ItemStatusCompleted, domain.ItemStatusCompleted),
			exp:   domain.OrderStatusCompleted,
		},
		{
			name:  "completed beside cancelled",
			items: items(domain.ItemStatusCompleted, domain.ItemStatusCancelled),
			exp:   domain.OrderStatusCompleted,
		},
		{
			name:  "pending beside cancelled",
			items: items(domain.ItemStatusPending, domain.ItemStatusCancelled),
			exp:   domain.OrderStatusPending,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, domain.DeriveOrderStatus(test.items))
		})
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{"pending to confirmed", domain.OrderStatusPending, domain.OrderStatusConfirmed, true},
		{"pending to cancelled", domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{"pending skips to shipped", domain.OrderStatusPending, domain.OrderStatusShipped, false},
		{"confirmed to shipped", domain.OrderStatusConfirmed, domain.OrderStatusShipped, true},
		{"confirmed to cancelled", domain.OrderStatusConfirmed, domain.OrderStatusCancelled, true},
		{"confirmed skips to completed", domain.OrderStatusConfirmed, domain.OrderStatusCompleted, false},
		{"shipped to out for delivery", domain.OrderStatusShipped, domain.OrderStatusOutForDelivery, true},
		{"shipped cannot cancel", domain.OrderStatusShipped, domain.OrderStatusCancelled, false},
		{"out for delivery to completed", domain.OrderStatusOutForDelivery, domain.OrderStatusCompleted, true},
		{"completed cannot cancel", domain.OrderStatusCompleted, domain.OrderStatusCancelled, false},
		{"completed is terminal", domain.OrderStatusCompleted, domain.OrderStatusPending, false},
		{"cancelled is terminal", domain.OrderStatusCancelled, domain.OrderStatusPending, false},
		{"no backward move", domain.OrderStatusShipped, domain.OrderStatusConfirmed, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.allowed, test.from.CanTransitionTo(test.to))
		})
	}
}
