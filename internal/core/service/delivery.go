package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"go.uber.org/zap"
)

type DeliveryService struct {
	deliveries port.DeliveryRepository
	orders     port.OrderRepository
	tracking   port.TrackingRepository
	users      port.UserRepository
	logger     *zap.Logger
}

func NewDeliveryService(deliveries port.DeliveryRepository, orders port.OrderRepository,
	tracking port.TrackingRepository, users port.UserRepository,
	logger *zap.Logger) (*DeliveryService, error) {
	return &DeliveryService{
		deliveries: deliveries,
		orders:     orders,
		tracking:   tracking,
		users:      users,
		logger:     logger,
	}, nil
}

// AssignRider binds a rider to a shipped order and advances the order to
// out for delivery. At most one rider per order; the bindings are immutable
// once created.
func (s *DeliveryService) AssignRider(ctx context.Context, orderID,
	riderID uuid.UUID) (*domain.Delivery, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusShipped {
		return nil, domain.ErrInvalidTransition
	}

	tracking, err := s.tracking.GetTrackingByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rider, err := s.users.GetUser(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if rider.Role != domain.RoleRider {
		return nil, domain.ErrForbidden
	}

	delivery := &domain.Delivery{
		ID:         uuid.New(),
		OrderID:    order.ID,
		TrackingID: tracking.ID,
		RiderID:    rider.ID,
		CreatedAt:  time.Now(),
	}

	created, err := s.deliveries.CreateDelivery(ctx, delivery)
	if err != nil {
		if err == domain.ErrConflictingData {
			return nil, domain.ErrRiderAlreadyAssigned
		}
		s.logger.Error("Create delivery", zap.Error(err),
			zap.String("order", order.ID.String()))
		return nil, domain.ErrInternal
	}

	if err := s.orders.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusOutForDelivery); err != nil {
		// The assignment exists but the order is stuck in shipped. Not rolled
		// back: re-running the status update is safe and the assignment must
		// stay unique.
		s.logger.Error("Advance order to out for delivery", zap.Error(err),
			zap.String("order", order.ID.String()))
		return nil, domain.ErrInternal
	}

	return created, nil
}

// CaptureDeliveryProof records the proof image and flips the delivered flag,
// exactly once. There is no transition back to undelivered.
func (s *DeliveryService) CaptureDeliveryProof(ctx context.Context, orderID uuid.UUID,
	proofImage string) (*domain.Delivery, error) {
	if proofImage == "" {
		return nil, domain.ErrBadRequest
	}

	delivery, err := s.deliveries.GetDeliveryByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if delivery.Delivered {
		return nil, domain.ErrAlreadyDelivered
	}

	if err := s.deliveries.MarkDelivered(ctx, delivery.ID, proofImage); err != nil {
		return nil, err
	}

	now := time.Now()
	delivery.Delivered = true
	delivery.ProofImage = proofImage
	delivery.DeliveredAt = &now

	return delivery, nil
}

// MarkCompleted moves a delivered order to completed, after which the seller
// balance credit becomes eligible.
func (s *DeliveryService) MarkCompleted(ctx context.Context, deliveryID uuid.UUID) (*domain.Order, error) {
	delivery, err := s.deliveries.ReadDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !delivery.Delivered {
		return nil, domain.ErrNotYetDelivered
	}

	order, err := s.orders.ReadOrder(ctx, delivery.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusCompleted) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.orders.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCompleted); err != nil {
		s.logger.Error("Complete order", zap.Error(err),
			zap.String("order", order.ID.String()))
		return nil, domain.ErrInternal
	}
	order.Status = domain.OrderStatusCompleted

	return order, nil
}

func (s *DeliveryService) ListUndeliveredByRider(ctx context.Context, riderID uuid.UUID) ([]*domain.Delivery, error) {
	list, err := s.deliveries.ListUndeliveredByRider(ctx, riderID)
	if err != nil {
		s.logger.Error("List deliveries for rider", zap.Error(err))
		return nil, err
	}
	return list, nil
}
