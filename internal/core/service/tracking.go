package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"go.uber.org/zap"
)

const orderCodeLetters = 4
const orderCodeDigits = 4

type TrackingService struct {
	tracking port.TrackingRepository
	orders   port.OrderRepository
	cache    port.TrackingCache
	logger   *zap.Logger
}

func NewTrackingService(tracking port.TrackingRepository, orders port.OrderRepository,
	cache port.TrackingCache, logger *zap.Logger) (*TrackingService, error) {
	return &TrackingService{
		tracking: tracking,
		orders:   orders,
		cache:    cache,
		logger:   logger,
	}, nil
}

// CreateTracking allocates a tracking record with a fresh order code for the
// order, Pending payment. Create-if-absent: when a record already exists it
// is returned as is, so callers may invoke this on every shipped transition.
func (s *TrackingService) CreateTracking(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error) {
	existing, err := s.tracking.GetTrackingByOrder(ctx, orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get tracking", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if _, err := s.orders.ReadOrder(ctx, orderID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < utils.CodeAttempts; attempt++ {
		code, err := utils.GenerateCode(orderCodeLetters, orderCodeDigits)
		if err != nil {
			s.logger.Error("Generate order code", zap.Error(err))
			return nil, domain.ErrInternal
		}

		tracking := &domain.OrderTracking{
			ID:            uuid.New(),
			OrderID:       orderID,
			Code:          code,
			PaymentStatus: domain.PaymentStatusPending,
			CreatedAt:     time.Now(),
		}

		created, err := s.tracking.CreateTracking(ctx, tracking)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrConflictingData) {
			s.logger.Error("Create tracking", zap.Error(err))
			return nil, domain.ErrInternal
		}

		// A concurrent create for the same order also lands here; return the
		// winner instead of burning a retry on a code that never collided.
		existing, exErr := s.tracking.GetTrackingByOrder(ctx, orderID)
		if exErr == nil {
			return existing, nil
		}
	}

	s.logger.Error("Order code generation exhausted",
		zap.String("order", orderID.String()),
		zap.Int("attempts", utils.CodeAttempts))
	return nil, domain.ErrCodeExhausted
}

// GetTrackingForOrder returns the tracking record unless the order is still
// pending. The code is withheld until the seller has committed to the order.
func (s *TrackingService) GetTrackingForOrder(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusPending {
		return nil, domain.ErrForbidden
	}

	if cached, err := s.cache.GetTracking(ctx, orderID); err == nil {
		return cached, nil
	}

	tracking, err := s.tracking.GetTrackingByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTracking(ctx, tracking); err != nil {
		s.logger.Warn("Cache tracking", zap.Error(err))
	}

	return tracking, nil
}

// MarkPaid flips the payment status to Paid. Re-marking an already paid
// record is a no-op success; the balance credit is coordinated separately.
func (s *TrackingService) MarkPaid(ctx context.Context, code string) error {
	tracking, err := s.tracking.GetTrackingByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := s.tracking.MarkPaid(ctx, code); err != nil {
		s.logger.Error("Mark tracking paid", zap.Error(err), zap.String("code", code))
		return err
	}

	if err := s.cache.InvalidateTracking(ctx, tracking.OrderID); err != nil {
		s.logger.Warn("Invalidate tracking cache", zap.Error(err))
	}

	return nil
}
