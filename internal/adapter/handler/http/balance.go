package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	Handler
	service port.BalanceService
}

func NewBalanceHandler(service port.BalanceService, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type balanceResponse struct {
	SellerID   uuid.UUID       `json:"sellerId"`
	BankNumber string          `json:"bankNumber"`
	Current    decimal.Decimal `json:"currentBalance"`
}

func newBalanceResponse(balance *domain.SellerBalance) balanceResponse {
	return balanceResponse{
		SellerID:   balance.SellerID,
		BankNumber: balance.BankNumber,
		Current:    balance.Current,
	}
}

func (bh *BalanceHandler) CreateBalance(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).UserID

	balance, err := bh.service.CreateBalance(ctx, sellerID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccessWithStatus(ctx, newBalanceResponse(balance), http.StatusCreated)
}

func (bh *BalanceHandler) GetBalance(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).UserID

	balance, err := bh.service.GetBalance(ctx, sellerID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, newBalanceResponse(balance))
}

type creditRequest struct {
	OrderCode string `json:"orderCode" binding:"required"`
}

func (bh *BalanceHandler) CreditOnDelivery(ctx *gin.Context) {
	req := creditRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	result, err := bh.service.CreditOnDelivery(ctx, req.OrderCode)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}
	recordSettlement(result.PaymentStatusUpdated)

	bh.handleSuccess(ctx, gin.H{
		"balance":              newBalanceResponse(result.Balance),
		"paymentStatusUpdated": result.PaymentStatusUpdated,
	})
}

type withdrawRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type withdrawalResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"withdrawalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	ProcessedAt *time.Time      `json:"processedAt,omitempty"`
}

func newWithdrawalResponse(withdrawal *domain.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		ID:          withdrawal.ID,
		Amount:      withdrawal.Amount,
		Status:      string(withdrawal.Status),
		CreatedAt:   withdrawal.CreatedAt,
		ProcessedAt: withdrawal.ProcessedAt,
	}
}

func (bh *BalanceHandler) RequestWithdrawal(ctx *gin.Context) {
	req := withdrawRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	sellerID := getAuthPayload(ctx).UserID
	withdrawal, err := bh.service.RequestWithdrawal(ctx, sellerID, amount)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccessWithStatus(ctx, newWithdrawalResponse(withdrawal), http.StatusCreated)
}

type resolveWithdrawalRequest struct {
	Status string `json:"status" binding:"required"`
}

func (bh *BalanceHandler) ResolveWithdrawal(ctx *gin.Context) {
	withdrawalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	req := resolveWithdrawalRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	var approve bool
	switch domain.WithdrawalStatus(req.Status) {
	case domain.WithdrawalStatusApproved:
		approve = true
	case domain.WithdrawalStatusRejected:
		approve = false
	default:
		bh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	withdrawal, err := bh.service.ResolveWithdrawal(ctx, withdrawalID, approve)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, newWithdrawalResponse(withdrawal))
}

func (bh *BalanceHandler) ListWithdrawals(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).UserID

	list, err := bh.service.ListWithdrawals(ctx, sellerID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	result := make([]withdrawalResponse, 0, len(list))
	for _, withdrawal := range list {
		result = append(result, newWithdrawalResponse(withdrawal))
	}
	bh.handleSuccess(ctx, result)
}
