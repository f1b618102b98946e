package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

type UserService interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)
}

// CheckoutItem is a single requested line in a checkout batch.
type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// ItemShortage reports one order item that could not be confirmed, with the
// stock actually available at the time of the attempt.
type ItemShortage struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

// AcceptResult enumerates the item-level outcome of an accept operation so
// the buyer and seller can reconcile the unfulfilled remainder.
type AcceptResult struct {
	Order      *domain.Order
	Confirmed  []domain.OrderItem
	OutOfStock []ItemShortage
}

type OrderService interface {
	Checkout(ctx context.Context, buyerID uuid.UUID, items []CheckoutItem,
		shippingFee decimal.Decimal, deliveryAddress string) ([]*domain.Order, error)
	AcceptPendingItems(ctx context.Context, sellerID, orderID uuid.UUID) (*AcceptResult, error)
	CancelItems(ctx context.Context, sellerID, orderID uuid.UUID) (*domain.Order, error)
	TransitionStatus(ctx context.Context, orderID uuid.UUID, next domain.OrderStatus) (*domain.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*domain.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*domain.Order, error)
}

type TrackingService interface {
	CreateTracking(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error)
	GetTrackingForOrder(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error)
	MarkPaid(ctx context.Context, code string) error
}

type DeliveryService interface {
	AssignRider(ctx context.Context, orderID, riderID uuid.UUID) (*domain.Delivery, error)
	CaptureDeliveryProof(ctx context.Context, orderID uuid.UUID, proofImage string) (*domain.Delivery, error)
	MarkCompleted(ctx context.Context, deliveryID uuid.UUID) (*domain.Order, error)
	ListUndeliveredByRider(ctx context.Context, riderID uuid.UUID) ([]*domain.Delivery, error)
}

// SettlementResult reports a credit outcome. PaymentStatusUpdated is false
// when the balance was credited but the tracking Paid flip failed; the
// credit is not rolled back and reconciliation retries the flip.
type SettlementResult struct {
	Balance              *domain.SellerBalance
	PaymentStatusUpdated bool
}

type BalanceService interface {
	CreateBalance(ctx context.Context, sellerID uuid.UUID) (*domain.SellerBalance, error)
	GetBalance(ctx context.Context, sellerID uuid.UUID) (*domain.SellerBalance, error)
	CreditOnDelivery(ctx context.Context, orderCode string) (*SettlementResult, error)
	RequestWithdrawal(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (*domain.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, withdrawalID uuid.UUID, approve bool) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, sellerID uuid.UUID) ([]*domain.Withdrawal, error)
	// ReconcileSettlements retries the next step for every settlement stuck
	// between credit and the Paid flip.
	ReconcileSettlements(ctx context.Context) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}
