package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"go.uber.org/zap"
)

type TrackingHandler struct {
	Handler
	service port.TrackingService
}

func NewTrackingHandler(service port.TrackingService, logger *zap.Logger) (*TrackingHandler, error) {
	return &TrackingHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type createTrackingRequest struct {
	OrderID uuid.UUID `json:"orderId" binding:"required"`
}

type trackingResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	OrderCode     string    `json:"orderCode"`
	PaymentStatus string    `json:"paymentStatus"`
}

func (th *TrackingHandler) CreateTracking(ctx *gin.Context) {
	req := createTrackingRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	tracking, err := th.service.CreateTracking(ctx, req.OrderID)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccessWithStatus(ctx, trackingResponse{
		OrderID:       tracking.OrderID,
		OrderCode:     tracking.Code,
		PaymentStatus: string(tracking.PaymentStatus),
	}, http.StatusCreated)
}

func (th *TrackingHandler) GetTrackingForOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	tracking, err := th.service.GetTrackingForOrder(ctx, orderID)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccess(ctx, trackingResponse{
		OrderID:       tracking.OrderID,
		OrderCode:     tracking.Code,
		PaymentStatus: string(tracking.PaymentStatus),
	})
}
