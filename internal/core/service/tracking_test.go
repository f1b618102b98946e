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
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type trackingMocks struct {
	tracking *mock.MockTrackingRepository
	orders   *mock.MockOrderRepository
	cache    *mock.MockTrackingCache
}

func newTrackingService(t *testing.T, ctrl *gomock.Controller) (*service.TrackingService, trackingMocks) {
	t.Helper()

	m := trackingMocks{
		tracking: mock.NewMockTrackingRepository(ctrl),
		orders:   mock.NewMockOrderRepository(ctrl),
		cache:    mock.NewMockTrackingCache(ctrl),
	}

	s, err := service.NewTrackingService(m.tracking, m.orders, m.cache, zap.NewNop())
	require.NoError(t, err)

	return s, m
}

func TestTrackingService_CreateTracking(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	t.Run("new record", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)
		m.tracking.EXPECT().CreateTracking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr *domain.OrderTracking) (*domain.OrderTracking, error) {
				return tr, nil
			})

		tracking, err := s.CreateTracking(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, tracking.OrderID)
		assert.Equal(t, domain.PaymentStatusPending, tracking.PaymentStatus)
		assert.Regexp(t, `^[A-Z]{4}[0-9]{4}$`, tracking.Code)
		assert.Nil(t, tracking.CreditedAt)
	})

	t.Run("existing record returned as is", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)
		existing := &domain.OrderTracking{OrderID: orderID, Code: "KEPT0001"}

		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).Return(existing, nil)

		tracking, err := s.CreateTracking(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, existing, tracking)
	})

	t.Run("code collision burns a retry", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)
		m.tracking.EXPECT().CreateTracking(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.tracking.EXPECT().CreateTracking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr *domain.OrderTracking) (*domain.OrderTracking, error) {
				return tr, nil
			})

		tracking, err := s.CreateTracking(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, tracking.OrderID)
	})

	t.Run("concurrent winner is returned", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)
		winner := &domain.OrderTracking{OrderID: orderID, Code: "WINS0001"}

		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)
		m.tracking.EXPECT().CreateTracking(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).Return(winner, nil)

		tracking, err := s.CreateTracking(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, winner, tracking)
	})

	t.Run("retries exhausted", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)
		m.tracking.EXPECT().CreateTracking(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData).Times(utils.CodeAttempts)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound).Times(utils.CodeAttempts)

		_, err := s.CreateTracking(context.Background(), orderID)

		assert.ErrorIs(t, err, domain.ErrCodeExhausted)
	})

	t.Run("unknown order", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)

		_, err := s.CreateTracking(context.Background(), orderID)

		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestTrackingService_GetTrackingForOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	tracking := &domain.OrderTracking{
		ID:            uuid.New(),
		OrderID:       orderID,
		Code:          "ABCD1234",
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}

	t.Run("withheld while pending", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPending}, nil)

		_, err := s.GetTrackingForOrder(context.Background(), orderID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)
		m.cache.EXPECT().GetTracking(gomock.Any(), orderID).Return(tracking, nil)

		result, err := s.GetTrackingForOrder(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, tracking, result)
	})

	t.Run("cache miss falls back and repopulates", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusShipped}, nil)
		m.cache.EXPECT().GetTracking(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).Return(tracking, nil)
		m.cache.EXPECT().SetTracking(gomock.Any(), tracking).Return(nil)

		result, err := s.GetTrackingForOrder(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, tracking, result)
	})
}

func TestTrackingService_MarkPaid(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	tracking := &domain.OrderTracking{ID: uuid.New(), OrderID: orderID, Code: "ABCD1234"}

	t.Run("flips and invalidates the cache", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), tracking.Code).Return(tracking, nil)
		m.tracking.EXPECT().MarkPaid(gomock.Any(), tracking.Code).Return(nil)
		m.cache.EXPECT().InvalidateTracking(gomock.Any(), orderID).Return(nil)

		assert.NoError(t, s.MarkPaid(context.Background(), tracking.Code))
	})

	t.Run("unknown code", func(t *testing.T) {
		s, m := newTrackingService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), "NOPE0000").
			Return(nil, domain.ErrDataNotFound)

		assert.ErrorIs(t, s.MarkPaid(context.Background(), "NOPE0000"), domain.ErrDataNotFound)
	})
}
