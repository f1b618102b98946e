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

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type checkoutItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

type checkoutRequest struct {
	Items           []checkoutItemRequest `json:"items" binding:"required"`
	ShippingFee     float64               `json:"shippingFee"`
	DeliveryAddress string                `json:"deliveryAddress" binding:"required"`
}

type orderItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

type orderResponse struct {
	ID              uuid.UUID           `json:"id"`
	SellerID        uuid.UUID           `json:"sellerId"`
	Items           []orderItemResponse `json:"items"`
	TotalPrice      decimal.Decimal     `json:"totalPrice"`
	DeliveryAddress string              `json:"deliveryAddress"`
	SellerAddress   string              `json:"sellerAddress"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Status:    string(item.Status),
		})
	}
	return orderResponse{
		ID:              order.ID,
		SellerID:        order.SellerID,
		Items:           items,
		TotalPrice:      order.TotalPrice,
		DeliveryAddress: order.DeliveryAddress,
		SellerAddress:   order.SellerAddress,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}

func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	req := checkoutRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	shippingFee, err := decimal.NewFromFloat64(req.ShippingFee)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]port.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, port.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	buyerID := getAuthPayload(ctx).UserID
	orders, err := oh.service.Checkout(ctx, buyerID, items, shippingFee, req.DeliveryAddress)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, newOrderResponse(order))
	}
	oh.handleSuccessWithStatus(ctx, result, http.StatusCreated)
}

type itemShortageResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Requested int       `json:"requested"`
	Available int       `json:"available"`
}

type acceptResponse struct {
	Order      orderResponse          `json:"order"`
	Confirmed  []orderItemResponse    `json:"confirmed"`
	OutOfStock []itemShortageResponse `json:"outOfStock"`
}

func newAcceptResponse(result *port.AcceptResult) acceptResponse {
	resp := acceptResponse{
		Order:      newOrderResponse(result.Order),
		Confirmed:  make([]orderItemResponse, 0, len(result.Confirmed)),
		OutOfStock: make([]itemShortageResponse, 0, len(result.OutOfStock)),
	}
	for _, item := range result.Confirmed {
		resp.Confirmed = append(resp.Confirmed, orderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Status:    string(item.Status),
		})
	}
	for _, shortage := range result.OutOfStock {
		resp.OutOfStock = append(resp.OutOfStock, itemShortageResponse{
			ProductID: shortage.ProductID,
			Requested: shortage.Requested,
			Available: shortage.Available,
		})
	}
	return resp
}

func (oh *OrderHandler) AcceptPendingItems(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	sellerID := getAuthPayload(ctx).UserID
	result, err := oh.service.AcceptPendingItems(ctx, sellerID, orderID)
	if err != nil {
		// A fully unfulfillable accept still carries the item-level outcome.
		if err == domain.ErrInsufficientStock && result != nil {
			ctx.JSON(http.StatusBadRequest, newAcceptResponse(result))
			return
		}
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newAcceptResponse(result))
}

func (oh *OrderHandler) CancelItems(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	sellerID := getAuthPayload(ctx).UserID
	order, err := oh.service.CancelItems(ctx, sellerID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) TransitionStatus(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := transitionRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.TransitionStatus(ctx, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListSellerOrders(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListOrdersBySeller(ctx, sellerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) ListBuyerOrders(ctx *gin.Context) {
	buyerID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListOrdersByBuyer(ctx, buyerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}
	oh.handleSuccess(ctx, result)
}
