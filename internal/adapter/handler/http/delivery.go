package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"go.uber.org/zap"
)

type DeliveryHandler struct {
	Handler
	service port.DeliveryService
}

func NewDeliveryHandler(service port.DeliveryService, logger *zap.Logger) (*DeliveryHandler, error) {
	return &DeliveryHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type deliveryResponse struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"orderId"`
	RiderID     uuid.UUID  `json:"riderId"`
	Delivered   bool       `json:"isDelivered"`
	ProofImage  string     `json:"deliveryProof,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

func newDeliveryResponse(delivery *domain.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:          delivery.ID,
		OrderID:     delivery.OrderID,
		RiderID:     delivery.RiderID,
		Delivered:   delivery.Delivered,
		ProofImage:  delivery.ProofImage,
		DeliveredAt: delivery.DeliveredAt,
	}
}

type assignRiderRequest struct {
	RiderID uuid.UUID `json:"riderId" binding:"required"`
}

func (dh *DeliveryHandler) AssignRider(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	req := assignRiderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	delivery, err := dh.service.AssignRider(ctx, orderID, req.RiderID)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	dh.handleSuccessWithStatus(ctx, newDeliveryResponse(delivery), http.StatusCreated)
}

type deliveryProofRequest struct {
	ProofImage string `json:"deliveryProof" binding:"required"`
}

func (dh *DeliveryHandler) CaptureDeliveryProof(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	req := deliveryProofRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	delivery, err := dh.service.CaptureDeliveryProof(ctx, orderID, req.ProofImage)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	dh.handleSuccess(ctx, newDeliveryResponse(delivery))
}

func (dh *DeliveryHandler) MarkCompleted(ctx *gin.Context) {
	deliveryID, err := uuid.Parse(ctx.Param("deliveryId"))
	if err != nil {
		dh.handleValidationError(ctx, err)
		return
	}

	order, err := dh.service.MarkCompleted(ctx, deliveryID)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	dh.handleSuccess(ctx, newOrderResponse(order))
}

func (dh *DeliveryHandler) ListAssignedDeliveries(ctx *gin.Context) {
	riderID := getAuthPayload(ctx).UserID

	list, err := dh.service.ListUndeliveredByRider(ctx, riderID)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	result := make([]deliveryResponse, 0, len(list))
	for _, delivery := range list {
		result = append(result, newDeliveryResponse(delivery))
	}
	dh.handleSuccess(ctx, result)
}
