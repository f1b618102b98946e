package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"go.uber.org/zap"
)

type OrderService struct {
	orders   port.OrderRepository
	products port.ProductRepository
	users    port.UserRepository
	tracking port.TrackingService
	logger   *zap.Logger
}

func NewOrderService(orders port.OrderRepository, products port.ProductRepository,
	users port.UserRepository, tracking port.TrackingService,
	logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		orders:   orders,
		products: products,
		users:    users,
		tracking: tracking,
		logger:   logger,
	}, nil
}

// Checkout creates one order per distinct seller in the requested items.
// Address snapshots are copied at creation time and never re-derived.
func (s *OrderService) Checkout(ctx context.Context, buyerID uuid.UUID,
	items []port.CheckoutItem, shippingFee decimal.Decimal,
	deliveryAddress string) ([]*domain.Order, error) {
	if len(items) == 0 || deliveryAddress == "" {
		return nil, domain.ErrBadRequest
	}
	if shippingFee.IsNeg() {
		return nil, domain.ErrBadRequest
	}

	perSeller := make(map[uuid.UUID][]domain.OrderItem)
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrBadRequest
		}

		product, err := s.products.ReadProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if item.Quantity > product.Stock {
			return nil, domain.ErrInsufficientStock
		}

		perSeller[product.SellerID] = append(perSeller[product.SellerID], domain.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Status:    domain.ItemStatusPending,
		})
	}

	orders := make([]*domain.Order, 0, len(perSeller))
	for sellerID, sellerItems := range perSeller {
		seller, err := s.users.GetUser(ctx, sellerID)
		if err != nil {
			return nil, err
		}

		total, err := orderTotal(sellerItems, shippingFee)
		if err != nil {
			s.logger.Error("Compute order total", zap.Error(err))
			return nil, domain.ErrInternal
		}

		order := &domain.Order{
			ID:              uuid.New(),
			BuyerID:         buyerID,
			SellerID:        sellerID,
			Items:           sellerItems,
			TotalPrice:      total,
			DeliveryAddress: deliveryAddress,
			SellerAddress:   seller.Address,
			Status:          domain.OrderStatusPending,
			CreatedAt:       time.Now(),
		}

		created, err := s.orders.CreateOrder(ctx, order)
		if err != nil {
			s.logger.Error("Create order", zap.Error(err),
				zap.String("seller", sellerID.String()))
			return nil, err
		}
		orders = append(orders, created)
	}

	return orders, nil
}

func orderTotal(items []domain.OrderItem, shippingFee decimal.Decimal) (decimal.Decimal, error) {
	total := shippingFee
	for _, item := range items {
		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("quantity out of range: %w", err)
		}
		line, err := item.Price.Mul(qty)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
	}
	return total, nil
}

// AcceptPendingItems confirms every pending item whose stock can still be
// reserved. Items whose product is missing or under-stocked stay pending and
// are reported back; partial fulfillment is an expected outcome, not an
// error. Only a fully empty confirmation fails.
func (s *OrderService) AcceptPendingItems(ctx context.Context, sellerID,
	orderID uuid.UUID) (*port.AcceptResult, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusConfirmed {
		return nil, domain.ErrInvalidTransition
	}

	result := &port.AcceptResult{Order: order}
	for i := range order.Items {
		item := &order.Items[i]
		if item.Status != domain.ItemStatusPending {
			continue
		}

		err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity)
		switch {
		case err == nil:
			item.Status = domain.ItemStatusConfirmed
			result.Confirmed = append(result.Confirmed, *item)
		case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrDataNotFound):
			result.OutOfStock = append(result.OutOfStock,
				s.itemShortage(ctx, item.ProductID, item.Quantity))
		default:
			s.logger.Error("Decrement stock", zap.Error(err),
				zap.String("product", item.ProductID.String()))
			return nil, domain.ErrInternal
		}
	}

	if len(result.Confirmed) == 0 {
		return result, domain.ErrInsufficientStock
	}

	order.Status = domain.DeriveOrderStatus(order.Items)
	if err := s.orders.UpdateOrderItems(ctx, order); err != nil {
		s.logger.Error("Persist accepted items", zap.Error(err),
			zap.String("order", order.ID.String()))
		return nil, domain.ErrInternal
	}

	return result, nil
}

func (s *OrderService) itemShortage(ctx context.Context, productID uuid.UUID,
	requested int) port.ItemShortage {
	shortage := port.ItemShortage{ProductID: productID, Requested: requested}
	product, err := s.products.ReadProduct(ctx, productID)
	if err == nil {
		shortage.Available = product.Stock
	}
	return shortage
}

// CancelItems moves the order's pending and confirmed items to cancelled.
// Completed items are untouched, and a completed order is never re-entered
// into cancellation.
func (s *OrderService) CancelItems(ctx context.Context, sellerID,
	orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusConfirmed {
		return nil, domain.ErrInvalidTransition
	}

	cancelled := 0
	for i := range order.Items {
		item := &order.Items[i]
		if item.Status == domain.ItemStatusPending || item.Status == domain.ItemStatusConfirmed {
			item.Status = domain.ItemStatusCancelled
			cancelled++
		}
	}
	if cancelled == 0 {
		return nil, domain.ErrNothingToCancel
	}

	order.Status = domain.DeriveOrderStatus(order.Items)
	if err := s.orders.UpdateOrderItems(ctx, order); err != nil {
		s.logger.Error("Persist cancelled items", zap.Error(err),
			zap.String("order", order.ID.String()))
		return nil, domain.ErrInternal
	}

	return order, nil
}

// TransitionStatus advances the shipping status through the forward-only
// map. Entering shipped lazily ensures a tracking record exists.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID uuid.UUID,
	next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	if next == domain.OrderStatusShipped {
		if _, err := s.tracking.CreateTracking(ctx, order.ID); err != nil {
			return nil, err
		}
	}

	if err := s.orders.UpdateOrderStatus(ctx, order.ID, next); err != nil {
		s.logger.Error("Update order status", zap.Error(err),
			zap.String("order", order.ID.String()))
		return nil, domain.ErrInternal
	}
	order.Status = next

	return order, nil
}

func (s *OrderService) ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error) {
	list, err := s.orders.ListOrdersBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error("List orders for seller", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *OrderService) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error) {
	list, err := s.orders.ListOrdersByBuyer(ctx, buyerID)
	if err != nil {
		s.logger.Error("List orders for buyer", zap.Error(err))
		return nil, err
	}
	return list, nil
}
