package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port/mock"
	"github.com/kalakal/kalakal-api/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type deliveryMocks struct {
	deliveries *mock.MockDeliveryRepository
	orders     *mock.MockOrderRepository
	tracking   *mock.MockTrackingRepository
	users      *mock.MockUserRepository
}

func newDeliveryService(t *testing.T, ctrl *gomock.Controller) (*service.DeliveryService, deliveryMocks) {
	t.Helper()

	m := deliveryMocks{
		deliveries: mock.NewMockDeliveryRepository(ctrl),
		orders:     mock.NewMockOrderRepository(ctrl),
		tracking:   mock.NewMockTrackingRepository(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
	}

	s, err := service.NewDeliveryService(m.deliveries, m.orders, m.tracking, m.users, zap.NewNop())
	require.NoError(t, err)

	return s, m
}

func TestDeliveryService_AssignRider(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	riderID := uuid.New()
	tracking := &domain.OrderTracking{ID: uuid.New(), OrderID: orderID, Code: "ABCD1234"}
	rider := &domain.User{ID: riderID, Role: domain.RoleRider}

	t.Run("binds rider and advances status", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusShipped}, nil)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).Return(tracking, nil)
		m.users.EXPECT().GetUser(gomock.Any(), riderID).Return(rider, nil)
		m.deliveries.EXPECT().CreateDelivery(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d *domain.Delivery) (*domain.Delivery, error) {
				return d, nil
			})
		m.orders.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, domain.OrderStatusOutForDelivery).
			Return(nil)

		delivery, err := s.AssignRider(context.Background(), orderID, riderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, delivery.OrderID)
		assert.Equal(t, tracking.ID, delivery.TrackingID)
		assert.Equal(t, riderID, delivery.RiderID)
		assert.False(t, delivery.Delivered)
	})

	t.Run("order not shipped yet", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)

		_, err := s.AssignRider(context.Background(), orderID, riderID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("second rider rejected", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusShipped}, nil)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).Return(tracking, nil)
		m.users.EXPECT().GetUser(gomock.Any(), riderID).Return(rider, nil)
		m.deliveries.EXPECT().CreateDelivery(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData)

		_, err := s.AssignRider(context.Background(), orderID, riderID)

		assert.ErrorIs(t, err, domain.ErrRiderAlreadyAssigned)
	})

	t.Run("assignee must be a rider", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)
		buyerID := uuid.New()

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusShipped}, nil)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).Return(tracking, nil)
		m.users.EXPECT().GetUser(gomock.Any(), buyerID).
			Return(&domain.User{ID: buyerID, Role: domain.RoleBuyer}, nil)

		_, err := s.AssignRider(context.Background(), orderID, buyerID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestDeliveryService_CaptureDeliveryProof(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	t.Run("records proof once", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)
		delivery := &domain.Delivery{ID: uuid.New(), OrderID: orderID}

		m.deliveries.EXPECT().GetDeliveryByOrder(gomock.Any(), orderID).Return(delivery, nil)
		m.deliveries.EXPECT().MarkDelivered(gomock.Any(), delivery.ID, "proof.jpg").Return(nil)

		result, err := s.CaptureDeliveryProof(context.Background(), orderID, "proof.jpg")

		require.NoError(t, err)
		assert.True(t, result.Delivered)
		assert.Equal(t, "proof.jpg", result.ProofImage)
		assert.NotNil(t, result.DeliveredAt)
	})

	t.Run("second proof rejected", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)
		now := time.Now()
		delivery := &domain.Delivery{
			ID: uuid.New(), OrderID: orderID,
			Delivered: true, ProofImage: "first.jpg", DeliveredAt: &now,
		}

		m.deliveries.EXPECT().GetDeliveryByOrder(gomock.Any(), orderID).Return(delivery, nil)

		_, err := s.CaptureDeliveryProof(context.Background(), orderID, "second.jpg")

		assert.ErrorIs(t, err, domain.ErrAlreadyDelivered)
	})

	t.Run("proof image is required", func(t *testing.T) {
		s, _ := newDeliveryService(t, mockCtrl)

		_, err := s.CaptureDeliveryProof(context.Background(), orderID, "")

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestDeliveryService_MarkCompleted(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	deliveryID := uuid.New()

	t.Run("delivered order completes", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)
		now := time.Now()
		delivery := &domain.Delivery{
			ID: deliveryID, OrderID: orderID,
			Delivered: true, DeliveredAt: &now,
		}

		m.deliveries.EXPECT().ReadDelivery(gomock.Any(), deliveryID).Return(delivery, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusOutForDelivery}, nil)
		m.orders.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, domain.OrderStatusCompleted).
			Return(nil)

		order, err := s.MarkCompleted(context.Background(), deliveryID)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	})

	t.Run("needs a delivery proof first", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)
		delivery := &domain.Delivery{ID: deliveryID, OrderID: orderID}

		m.deliveries.EXPECT().ReadDelivery(gomock.Any(), deliveryID).Return(delivery, nil)

		_, err := s.MarkCompleted(context.Background(), deliveryID)

		assert.ErrorIs(t, err, domain.ErrNotYetDelivered)
	})

	t.Run("order must be out for delivery", func(t *testing.T) {
		s, m := newDeliveryService(t, mockCtrl)
		now := time.Now()
		delivery := &domain.Delivery{
			ID: deliveryID, OrderID: orderID,
			Delivered: true, DeliveredAt: &now,
		}

		m.deliveries.EXPECT().ReadDelivery(gomock.Any(), deliveryID).Return(delivery, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusShipped}, nil)

		_, err := s.MarkCompleted(context.Background(), deliveryID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}
