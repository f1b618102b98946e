package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// DecrementStock subtracts quantity from the product's stock as a single
	// conditional update. It returns domain.ErrInsufficientStock when the
	// remaining stock does not cover the quantity.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error)
	// UpdateOrderItems persists the item statuses and the order status in a
	// single transaction.
	UpdateOrderItems(ctx context.Context, order *domain.Order) error
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
	// ListCompletedUncredited returns completed orders whose tracking has no
	// settlement stamp yet, for the reconciliation job.
	ListCompletedUncredited(ctx context.Context) ([]*domain.Order, error)
}

type TrackingRepository interface {
	CreateTracking(ctx context.Context, tracking *domain.OrderTracking) (*domain.OrderTracking, error)
	GetTrackingByOrder(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error)
	GetTrackingByCode(ctx context.Context, code string) (*domain.OrderTracking, error)
	MarkPaid(ctx context.Context, code string) error
	// ListCreditedUnpaid returns trackings credited to the seller balance but
	// still awaiting the Paid flip, for the reconciliation job.
	ListCreditedUnpaid(ctx context.Context) ([]*domain.OrderTracking, error)
}

type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error)
	ReadDelivery(ctx context.Context, deliveryID uuid.UUID) (*domain.Delivery, error)
	GetDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error)
	// MarkDelivered flips the delivered flag and stores the proof reference
	// as a single conditional update; it returns domain.ErrAlreadyDelivered
	// when the flag was already set.
	MarkDelivered(ctx context.Context, deliveryID uuid.UUID, proofImage string) error
	ListUndeliveredByRider(ctx context.Context, riderID uuid.UUID) ([]*domain.Delivery, error)
}

type BalanceRepository interface {
	CreateBalance(ctx context.Context, balance *domain.SellerBalance) (*domain.SellerBalance, error)
	GetBalanceBySeller(ctx context.Context, sellerID uuid.UUID) (*domain.SellerBalance, error)
	// CreditBalance increments the seller balance and stamps the tracking's
	// credited-at marker in one transaction. It returns
	// domain.ErrAlreadyCredited when the tracking was stamped before, which
	// makes settlement retries safe against double-crediting.
	CreditBalance(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal,
		trackingID uuid.UUID) (*domain.SellerBalance, error)
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	ReadWithdrawal(ctx context.Context, withdrawalID uuid.UUID) (*domain.Withdrawal, error)
	ListWithdrawalsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Withdrawal, error)
	// ApproveWithdrawal debits the balance and marks the withdrawal approved
	// in one transaction, re-validating both the pending status and the
	// balance with conditional updates.
	ApproveWithdrawal(ctx context.Context, withdrawalID uuid.UUID) (*domain.SellerBalance, error)
	RejectWithdrawal(ctx context.Context, withdrawalID uuid.UUID) error
}
