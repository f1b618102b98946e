package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"go.uber.org/zap"
)

const bankNumberLetters = 4
const bankNumberDigits = 4

type BalanceService struct {
	balances port.BalanceRepository
	tracking port.TrackingRepository
	payments port.TrackingService
	orders   port.OrderRepository
	users    port.UserRepository
	logger   *zap.Logger
}

func NewBalanceService(balances port.BalanceRepository, tracking port.TrackingRepository,
	payments port.TrackingService, orders port.OrderRepository, users port.UserRepository,
	logger *zap.Logger) (*BalanceService, error) {
	return &BalanceService{
		balances: balances,
		tracking: tracking,
		payments: payments,
		orders:   orders,
		users:    users,
		logger:   logger,
	}, nil
}

// CreateBalance opens the one balance a seller may have, with a fresh unique
// bank number.
func (s *BalanceService) CreateBalance(ctx context.Context, sellerID uuid.UUID) (*domain.SellerBalance, error) {
	seller, err := s.users.GetUser(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != domain.RoleSeller {
		return nil, domain.ErrForbidden
	}

	existing, err := s.balances.GetBalanceBySeller(ctx, sellerID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get balance", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if existing != nil {
		return nil, domain.ErrConflictingData
	}

	for attempt := 0; attempt < utils.CodeAttempts; attempt++ {
		bankNumber, err := utils.GenerateCode(bankNumberLetters, bankNumberDigits)
		if err != nil {
			s.logger.Error("Generate bank number", zap.Error(err))
			return nil, domain.ErrInternal
		}

		balance := &domain.SellerBalance{
			ID:         uuid.New(),
			SellerID:   sellerID,
			BankNumber: bankNumber,
			Current:    decimal.Zero,
		}

		created, err := s.balances.CreateBalance(ctx, balance)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrConflictingData) {
			s.logger.Error("Create balance", zap.Error(err))
			return nil, domain.ErrInternal
		}

		// The conflict may also be a concurrent balance for the same seller.
		if existing, exErr := s.balances.GetBalanceBySeller(ctx, sellerID); exErr == nil && existing != nil {
			return nil, domain.ErrConflictingData
		}
	}

	s.logger.Error("Bank number generation exhausted",
		zap.String("seller", sellerID.String()),
		zap.Int("attempts", utils.CodeAttempts))
	return nil, domain.ErrCodeExhausted
}

func (s *BalanceService) GetBalance(ctx context.Context, sellerID uuid.UUID) (*domain.SellerBalance, error) {
	balance, err := s.balances.GetBalanceBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error("Get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// CreditOnDelivery settles a completed order: the order total net of the
// flat service fee is credited to the seller balance, then the tracking
// record is marked Paid. The two writes are sequenced, not atomic; a failed
// Paid flip leaves the credit in place, reports PaymentStatusUpdated false
// and is retried by reconciliation. The credit itself is stamped on the
// tracking row, so re-running never credits twice.
func (s *BalanceService) CreditOnDelivery(ctx context.Context, orderCode string) (*port.SettlementResult, error) {
	tracking, err := s.tracking.GetTrackingByCode(ctx, orderCode)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.ReadOrder(ctx, tracking.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusCompleted {
		return nil, domain.ErrOrderNotCompleted
	}

	amount, err := order.TotalPrice.Sub(domain.FlatServiceFee)
	if err != nil {
		s.logger.Error("Compute settlement amount", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !amount.IsPos() {
		return nil, domain.ErrBadRequest
	}

	balance, err := s.balances.CreditBalance(ctx, order.SellerID, amount, tracking.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCredited) {
			// Credit step done on an earlier attempt; fall through and retry
			// the Paid flip only.
			balance, err = s.balances.GetBalanceBySeller(ctx, order.SellerID)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	result := &port.SettlementResult{Balance: balance, PaymentStatusUpdated: true}
	if err := s.payments.MarkPaid(ctx, orderCode); err != nil {
		s.logger.Error("Mark paid after credit", zap.Error(err),
			zap.String("code", orderCode))
		result.PaymentStatusUpdated = false
	}

	return result, nil
}

// RequestWithdrawal validates the amount against the balance at request
// time. The balance is not reserved; the check is repeated atomically at
// approval.
func (s *BalanceService) RequestWithdrawal(ctx context.Context, sellerID uuid.UUID,
	amount decimal.Decimal) (*domain.Withdrawal, error) {
	if !amount.IsPos() {
		return nil, domain.ErrBadRequest
	}

	balance, err := s.balances.GetBalanceBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if balance.Current.Cmp(amount) < 0 {
		return nil, domain.ErrInsufficientBalance
	}

	withdrawal := &domain.Withdrawal{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Amount:    amount,
		Status:    domain.WithdrawalStatusPending,
		CreatedAt: time.Now(),
	}

	created, err := s.balances.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		s.logger.Error("Create withdrawal", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}

// ResolveWithdrawal approves or rejects a pending withdrawal. Approval
// debits the balance; rejection changes nothing but the status.
func (s *BalanceService) ResolveWithdrawal(ctx context.Context, withdrawalID uuid.UUID,
	approve bool) (*domain.Withdrawal, error) {
	withdrawal, err := s.balances.ReadWithdrawal(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal.Status != domain.WithdrawalStatusPending {
		return nil, domain.ErrWithdrawalNotPending
	}

	if approve {
		if _, err := s.balances.ApproveWithdrawal(ctx, withdrawalID); err != nil {
			return nil, err
		}
		withdrawal.Status = domain.WithdrawalStatusApproved
	} else {
		if err := s.balances.RejectWithdrawal(ctx, withdrawalID); err != nil {
			return nil, err
		}
		withdrawal.Status = domain.WithdrawalStatusRejected
	}

	now := time.Now()
	withdrawal.ProcessedAt = &now

	return withdrawal, nil
}

func (s *BalanceService) ListWithdrawals(ctx context.Context, sellerID uuid.UUID) ([]*domain.Withdrawal, error) {
	list, err := s.balances.ListWithdrawalsBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error("List withdrawals", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// ReconcileSettlements is the saga sweeper: completed orders that were never
// credited get the credit step retried, credited trackings still Pending get
// the Paid flip retried. Each step is idempotent, so overlap with live
// requests is harmless.
func (s *BalanceService) ReconcileSettlements(ctx context.Context) error {
	stuck, err := s.orders.ListCompletedUncredited(ctx)
	if err != nil {
		return err
	}
	for _, order := range stuck {
		tracking, err := s.tracking.GetTrackingByOrder(ctx, order.ID)
		if err != nil {
			s.logger.Warn("Reconcile: tracking missing for completed order",
				zap.String("order", order.ID.String()), zap.Error(err))
			continue
		}
		if _, err := s.CreditOnDelivery(ctx, tracking.Code); err != nil {
			s.logger.Warn("Reconcile: retry credit",
				zap.String("code", tracking.Code), zap.Error(err))
		}
	}

	unpaid, err := s.tracking.ListCreditedUnpaid(ctx)
	if err != nil {
		return err
	}
	for _, tracking := range unpaid {
		if err := s.payments.MarkPaid(ctx, tracking.Code); err != nil {
			s.logger.Warn("Reconcile: retry mark paid",
				zap.String("code", tracking.Code), zap.Error(err))
		}
	}

	return nil
}
