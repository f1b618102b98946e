package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port/mock"
	"github.com/kalakal/kalakal-api/internal/core/service"
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type balanceMocks struct {
	balances *mock.MockBalanceRepository
	tracking *mock.MockTrackingRepository
	payments *mock.MockTrackingService
	orders   *mock.MockOrderRepository
	users    *mock.MockUserRepository
}

func newBalanceService(t *testing.T, ctrl *gomock.Controller) (*service.BalanceService, balanceMocks) {
	t.Helper()

	m := balanceMocks{
		balances: mock.NewMockBalanceRepository(ctrl),
		tracking: mock.NewMockTrackingRepository(ctrl),
		payments: mock.NewMockTrackingService(ctrl),
		orders:   mock.NewMockOrderRepository(ctrl),
		users:    mock.NewMockUserRepository(ctrl),
	}

	s, err := service.NewBalanceService(m.balances, m.tracking, m.payments, m.orders, m.users, zap.NewNop())
	require.NoError(t, err)

	return s, m
}

func TestBalanceService_CreateBalance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()
	seller := &domain.User{ID: sellerID, Role: domain.RoleSeller}

	t.Run("opens with a fresh bank number", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.users.EXPECT().GetUser(gomock.Any(), sellerID).Return(seller, nil)
		m.balances.EXPECT().GetBalanceBySeller(gomock.Any(), sellerID).
			Return(nil, domain.ErrDataNotFound)
		m.balances.EXPECT().CreateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *domain.SellerBalance) (*domain.SellerBalance, error) {
				return b, nil
			})

		balance, err := s.CreateBalance(context.Background(), sellerID)

		require.NoError(t, err)
		assert.Equal(t, sellerID, balance.SellerID)
		assert.Regexp(t, `^[A-Z]{4}[0-9]{4}$`, balance.BankNumber)
		assert.Equal(t, "0", balance.Current.String())
	})

	t.Run("one balance per seller", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.users.EXPECT().GetUser(gomock.Any(), sellerID).Return(seller, nil)
		m.balances.EXPECT().GetBalanceBySeller(gomock.Any(), sellerID).
			Return(&domain.SellerBalance{SellerID: sellerID}, nil)

		_, err := s.CreateBalance(context.Background(), sellerID)

		assert.ErrorIs(t, err, domain.ErrConflictingData)
	})

	t.Run("sellers only", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)
		buyerID := uuid.New()

		m.users.EXPECT().GetUser(gomock.Any(), buyerID).
			Return(&domain.User{ID: buyerID, Role: domain.RoleBuyer}, nil)

		_, err := s.CreateBalance(context.Background(), buyerID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("bank number retries exhausted", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.users.EXPECT().GetUser(gomock.Any(), sellerID).Return(seller, nil)
		m.balances.EXPECT().GetBalanceBySeller(gomock.Any(), sellerID).
			Return(nil, domain.ErrDataNotFound).Times(utils.CodeAttempts + 1)
		m.balances.EXPECT().CreateBalance(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflictingData).Times(utils.CodeAttempts)

		_, err := s.CreateBalance(context.Background(), sellerID)

		assert.ErrorIs(t, err, domain.ErrCodeExhausted)
	})
}

func TestBalanceService_CreditOnDelivery(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()
	orderID := uuid.New()
	tracking := &domain.OrderTracking{
		ID:            uuid.New(),
		OrderID:       orderID,
		Code:          "ABCD1234",
		PaymentStatus: domain.PaymentStatusPending,
	}
	completedOrder := &domain.Order{
		ID:         orderID,
		SellerID:   sellerID,
		Status:     domain.OrderStatusCompleted,
		TotalPrice: decimal.MustNew(450, 0),
	}

	t.Run("credits the net of the flat fee", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), tracking.Code).Return(tracking, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).Return(completedOrder, nil)
		m.balances.EXPECT().CreditBalance(gomock.Any(), sellerID, gomock.Any(), tracking.ID).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, amount decimal.Decimal, _ uuid.UUID) (*domain.SellerBalance, error) {
				assert.Equal(t, "400", amount.String())
				return &domain.SellerBalance{SellerID: sellerID, Current: amount}, nil
			})
		m.payments.EXPECT().MarkPaid(gomock.Any(), tracking.Code).Return(nil)

		result, err := s.CreditOnDelivery(context.Background(), tracking.Code)

		require.NoError(t, err)
		assert.True(t, result.PaymentStatusUpdated)
		assert.Equal(t, "400", result.Balance.Current.String())
	})

	t.Run("paid flip failure keeps the credit", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), tracking.Code).Return(tracking, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).Return(completedOrder, nil)
		m.balances.EXPECT().CreditBalance(gomock.Any(), sellerID, gomock.Any(), tracking.ID).
			Return(&domain.SellerBalance{SellerID: sellerID, Current: decimal.MustNew(400, 0)}, nil)
		m.payments.EXPECT().MarkPaid(gomock.Any(), tracking.Code).
			Return(errors.New("store down"))

		result, err := s.CreditOnDelivery(context.Background(), tracking.Code)

		require.NoError(t, err)
		assert.False(t, result.PaymentStatusUpdated)
	})

	t.Run("retry after earlier credit only flips paid", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)
		balance := &domain.SellerBalance{SellerID: sellerID, Current: decimal.MustNew(400, 0)}

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), tracking.Code).Return(tracking, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).Return(completedOrder, nil)
		m.balances.EXPECT().CreditBalance(gomock.Any(), sellerID, gomock.Any(), tracking.ID).
			Return(nil, domain.ErrAlreadyCredited)
		m.balances.EXPECT().GetBalanceBySeller(gomock.Any(), sellerID).Return(balance, nil)
		m.payments.EXPECT().MarkPaid(gomock.Any(), tracking.Code).Return(nil)

		result, err := s.CreditOnDelivery(context.Background(), tracking.Code)

		require.NoError(t, err)
		assert.True(t, result.PaymentStatusUpdated)
		assert.Equal(t, balance, result.Balance)
	})

	t.Run("order not completed", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), tracking.Code).Return(tracking, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, SellerID: sellerID,
				Status: domain.OrderStatusOutForDelivery}, nil)

		_, err := s.CreditOnDelivery(context.Background(), tracking.Code)

		assert.ErrorIs(t, err, domain.ErrOrderNotCompleted)
	})

	t.Run("total must exceed the fee", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), tracking.Code).Return(tracking, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, SellerID: sellerID,
				Status:     domain.OrderStatusCompleted,
				TotalPrice: decimal.MustNew(50, 0)}, nil)

		_, err := s.CreditOnDelivery(context.Background(), tracking.Code)

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestBalanceService_RequestWithdrawal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()

	t.Run("records a pending request", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.balances.EXPECT().GetBalanceBySeller(gomock.Any(), sellerID).
			Return(&domain.SellerBalance{SellerID: sellerID, Current: decimal.MustNew(400, 0)}, nil)
		m.balances.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
				return w, nil
			})

		withdrawal, err := s.RequestWithdrawal(context.Background(), sellerID, decimal.MustNew(300, 0))

		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusPending, withdrawal.Status)
		assert.Equal(t, "300", withdrawal.Amount.String())
	})

	t.Run("amount above balance", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.balances.EXPECT().GetBalanceBySeller(gomock.Any(), sellerID).
			Return(&domain.SellerBalance{SellerID: sellerID, Current: decimal.MustNew(100, 0)}, nil)

		_, err := s.RequestWithdrawal(context.Background(), sellerID, decimal.MustNew(300, 0))

		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		s, _ := newBalanceService(t, mockCtrl)

		_, err := s.RequestWithdrawal(context.Background(), sellerID, decimal.Zero)

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestBalanceService_ResolveWithdrawal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()
	withdrawalID := uuid.New()

	pendingWithdrawal := func() *domain.Withdrawal {
		return &domain.Withdrawal{
			ID:       withdrawalID,
			SellerID: sellerID,
			Amount:   decimal.MustNew(300, 0),
			Status:   domain.WithdrawalStatusPending,
		}
	}

	t.Run("approval debits the balance", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.balances.EXPECT().ReadWithdrawal(gomock.Any(), withdrawalID).
			Return(pendingWithdrawal(), nil)
		m.balances.EXPECT().ApproveWithdrawal(gomock.Any(), withdrawalID).
			Return(&domain.SellerBalance{SellerID: sellerID, Current: decimal.MustNew(100, 0)}, nil)

		withdrawal, err := s.ResolveWithdrawal(context.Background(), withdrawalID, true)

		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusApproved, withdrawal.Status)
		assert.NotNil(t, withdrawal.ProcessedAt)
	})

	t.Run("rejection leaves the balance alone", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.balances.EXPECT().ReadWithdrawal(gomock.Any(), withdrawalID).
			Return(pendingWithdrawal(), nil)
		m.balances.EXPECT().RejectWithdrawal(gomock.Any(), withdrawalID).Return(nil)

		withdrawal, err := s.ResolveWithdrawal(context.Background(), withdrawalID, false)

		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusRejected, withdrawal.Status)
	})

	t.Run("already resolved", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)
		now := time.Now()
		resolved := pendingWithdrawal()
		resolved.Status = domain.WithdrawalStatusApproved
		resolved.ProcessedAt = &now

		m.balances.EXPECT().ReadWithdrawal(gomock.Any(), withdrawalID).Return(resolved, nil)

		_, err := s.ResolveWithdrawal(context.Background(), withdrawalID, true)

		assert.ErrorIs(t, err, domain.ErrWithdrawalNotPending)
	})

	t.Run("insufficient funds at approval", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.balances.EXPECT().ReadWithdrawal(gomock.Any(), withdrawalID).
			Return(pendingWithdrawal(), nil)
		m.balances.EXPECT().ApproveWithdrawal(gomock.Any(), withdrawalID).
			Return(nil, domain.ErrInsufficientBalance)

		_, err := s.ResolveWithdrawal(context.Background(), withdrawalID, true)

		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})
}

func TestBalanceService_ReconcileSettlements(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()
	orderID := uuid.New()
	stuckOrder := &domain.Order{
		ID:         orderID,
		SellerID:   sellerID,
		Status:     domain.OrderStatusCompleted,
		TotalPrice: decimal.MustNew(450, 0),
	}
	stuckTracking := &domain.OrderTracking{
		ID:      uuid.New(),
		OrderID: orderID,
		Code:    "STUK0001",
	}
	unpaidTracking := &domain.OrderTracking{
		ID:      uuid.New(),
		OrderID: uuid.New(),
		Code:    "UNPD0002",
	}

	t.Run("retries both settlement legs", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.orders.EXPECT().ListCompletedUncredited(gomock.Any()).
			Return([]*domain.Order{stuckOrder}, nil)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(stuckTracking, nil)
		m.tracking.EXPECT().GetTrackingByCode(gomock.Any(), stuckTracking.Code).
			Return(stuckTracking, nil)
		m.orders.EXPECT().ReadOrder(gomock.Any(), orderID).Return(stuckOrder, nil)
		m.balances.EXPECT().CreditBalance(gomock.Any(), sellerID, gomock.Any(), stuckTracking.ID).
			Return(&domain.SellerBalance{SellerID: sellerID, Current: decimal.MustNew(400, 0)}, nil)
		m.payments.EXPECT().MarkPaid(gomock.Any(), stuckTracking.Code).Return(nil)

		m.tracking.EXPECT().ListCreditedUnpaid(gomock.Any()).
			Return([]*domain.OrderTracking{unpaidTracking}, nil)
		m.payments.EXPECT().MarkPaid(gomock.Any(), unpaidTracking.Code).Return(nil)

		assert.NoError(t, s.ReconcileSettlements(context.Background()))
	})

	t.Run("a failed retry does not stop the sweep", func(t *testing.T) {
		s, m := newBalanceService(t, mockCtrl)

		m.orders.EXPECT().ListCompletedUncredited(gomock.Any()).
			Return([]*domain.Order{stuckOrder}, nil)
		m.tracking.EXPECT().GetTrackingByOrder(gomock.Any(), orderID).
			Return(nil, domain.ErrDataNotFound)

		m.tracking.EXPECT().ListCreditedUnpaid(gomock.Any()).
			Return([]*domain.OrderTracking{unpaidTracking}, nil)
		m.payments.EXPECT().MarkPaid(gomock.Any(), unpaidTracking.Code).
			Return(errors.New("store down"))

		assert.NoError(t, s.ReconcileSettlements(context.Background()))
	})
}
