package main

import (
	"context"
	"fmt"

	"github.com/kalakal/kalakal-api/internal/adapter/auth"
	"github.com/kalakal/kalakal-api/internal/adapter/cache"
	"github.com/kalakal/kalakal-api/internal/adapter/config"
	"github.com/kalakal/kalakal-api/internal/adapter/handler/http"
	"github.com/kalakal/kalakal-api/internal/adapter/logger"
	"github.com/kalakal/kalakal-api/internal/adapter/storage"
	"github.com/kalakal/kalakal-api/internal/adapter/storage/repository"
	"github.com/kalakal/kalakal-api/internal/core/service"
	"github.com/kalakal/kalakal-api/internal/jobs"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		log.Error("user repo creating error", zap.Error(err))
		return
	}
	productRepo, err := repository.NewProductRepository(db)
	if err != nil {
		log.Error("product repo creating error", zap.Error(err))
		return
	}
	orderRepo, err := repository.NewOrderRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	trackingRepo, err := repository.NewTrackingRepository(db)
	if err != nil {
		log.Error("tracking repo creating error", zap.Error(err))
		return
	}
	deliveryRepo, err := repository.NewDeliveryRepository(db)
	if err != nil {
		log.Error("delivery repo creating error", zap.Error(err))
		return
	}
	balanceRepo, err := repository.NewBalanceRepository(db)
	if err != nil {
		log.Error("balance repo creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	trackingCache, err := cache.NewTrackingCache(ctx, conf.Cache)
	if err != nil {
		log.Error("tracking cache creating error", zap.Error(err))
		return
	}

	userSvc, err := service.NewUserService(userRepo, tokenService, log.Named("UserService"))
	if err != nil {
		log.Error("user service creating error", zap.Error(err))
		return
	}
	productSvc, err := service.NewProductService(productRepo, userRepo, log.Named("ProductService"))
	if err != nil {
		log.Error("product service creating error", zap.Error(err))
		return
	}
	trackingSvc, err := service.NewTrackingService(trackingRepo, orderRepo,
		trackingCache, log.Named("TrackingService"))
	if err != nil {
		log.Error("tracking service creating error", zap.Error(err))
		return
	}
	orderSvc, err := service.NewOrderService(orderRepo, productRepo, userRepo,
		trackingSvc, log.Named("OrderService"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	deliverySvc, err := service.NewDeliveryService(deliveryRepo, orderRepo,
		trackingRepo, userRepo, log.Named("DeliveryService"))
	if err != nil {
		log.Error("delivery service creating error", zap.Error(err))
		return
	}
	balanceSvc, err := service.NewBalanceService(balanceRepo, trackingRepo,
		trackingSvc, orderRepo, userRepo, log.Named("BalanceService"))
	if err != nil {
		log.Error("balance service creating error", zap.Error(err))
		return
	}

	settlementJob := jobs.NewSettlementJob(balanceSvc, log.Named("SettlementJob"))
	if err := settlementJob.Start(); err != nil {
		log.Error("settlement job starting error", zap.Error(err))
		return
	}
	defer settlementJob.Stop()

	userHandler, err := http.NewUserHandler(userSvc, log.Named("UserHandler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(productSvc, log.Named("ProductHandler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orderSvc, log.Named("OrderHandler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	trackingHandler, err := http.NewTrackingHandler(trackingSvc, log.Named("TrackingHandler"))
	if err != nil {
		log.Error("tracking handler creating error", zap.Error(err))
		return
	}
	deliveryHandler, err := http.NewDeliveryHandler(deliverySvc, log.Named("DeliveryHandler"))
	if err != nil {
		log.Error("delivery handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(balanceSvc, log.Named("BalanceHandler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, userHandler, productHandler,
		orderHandler, trackingHandler, deliveryHandler, balanceHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
