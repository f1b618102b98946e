package http

import (
	"github.com/gin-gonic/gin"
	"github.com/kalakal/kalakal-api/internal/adapter/config"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	orderHandler *OrderHandler,
	trackingHandler *TrackingHandler,
	deliveryHandler *DeliveryHandler,
	balanceHandler *BalanceHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metricsMiddleware())

	h := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", prometheusHandler())

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
		}

		products := api.Group("/products")
		{
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", authCheck(tokenService, h),
				requireRole(h, domain.RoleSeller), productHandler.CreateProduct)
		}

		orders := api.Group("/orders")
		orders.Use(authCheck(tokenService, h))
		{
			orders.POST("", requireRole(h, domain.RoleBuyer), orderHandler.Checkout)
			orders.GET("", requireRole(h, domain.RoleBuyer), orderHandler.ListBuyerOrders)
			orders.GET("/seller", requireRole(h, domain.RoleSeller), orderHandler.ListSellerOrders)
			orders.PATCH("/seller/accept/:orderId", requireRole(h, domain.RoleSeller),
				orderHandler.AcceptPendingItems)
			orders.DELETE("/seller/cancel/:orderId", requireRole(h, domain.RoleSeller),
				orderHandler.CancelItems)
		}

		tracking := api.Group("/order-tracking")
		tracking.Use(authCheck(tokenService, h))
		{
			tracking.POST("", requireRole(h, domain.RoleAdmin), trackingHandler.CreateTracking)
			tracking.GET("/:orderId", trackingHandler.GetTrackingForOrder)
		}

		delivery := api.Group("/order-to-deliver")
		delivery.Use(authCheck(tokenService, h))
		{
			delivery.POST("/:orderId/assign-rider", requireRole(h, domain.RoleAdmin),
				deliveryHandler.AssignRider)
			delivery.PUT("/delivery-status/:orderId", requireRole(h, domain.RoleRider),
				deliveryHandler.CaptureDeliveryProof)
			delivery.PUT("/mark-completed/:deliveryId", requireRole(h, domain.RoleAdmin),
				deliveryHandler.MarkCompleted)
			delivery.GET("/assigned", requireRole(h, domain.RoleRider),
				deliveryHandler.ListAssignedDeliveries)
		}

		balance := api.Group("/seller-balance")
		balance.Use(authCheck(tokenService, h))
		{
			balance.POST("", requireRole(h, domain.RoleSeller), balanceHandler.CreateBalance)
			balance.GET("", requireRole(h, domain.RoleSeller), balanceHandler.GetBalance)
			balance.POST("/withdraw", requireRole(h, domain.RoleSeller),
				balanceHandler.RequestWithdrawal)
			balance.GET("/withdrawals", requireRole(h, domain.RoleSeller),
				balanceHandler.ListWithdrawals)
		}

		admin := api.Group("/admin")
		admin.Use(authCheck(tokenService, h), requireRole(h, domain.RoleAdmin))
		{
			admin.PATCH("/orders/:orderId/status", orderHandler.TransitionStatus)
			admin.PATCH("/seller-balance/update", balanceHandler.CreditOnDelivery)
			admin.PUT("/seller-balance/withdrawal/:id/status", balanceHandler.ResolveWithdrawal)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
