package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/feedygotech/laundry-backend/internal/application/pricing"
	"github.com/feedygotech/laundry-backend/internal/application/report"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/auth"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/cache"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/config"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/logger"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/mailer"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/persistence"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/scheduler"
	"github.com/feedygotech/laundry-backend/internal/interfaces/http/handler"
	"github.com/feedygotech/laundry-backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting laundry backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// The price list cache is an optimization. When Redis is down the
	// server starts anyway and every display is computed fresh.
	var priceListCache pricing.PriceListCache
	if redisCache, err := cache.NewRedisPriceListCache(&cfg.Redis); err != nil {
		log.Warn("Redis unavailable, price list caching disabled", zap.Error(err))
	} else {
		priceListCache = redisCache
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	mail := mailer.New(&cfg.Mail, log)

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	snapshotRepo := persistence.NewGormSnapshotRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	pickupRepo := persistence.NewGormPickupRepository(db.DB)
	contactRepo := persistence.NewGormContactQueryRepository(db.DB)
	washingTypeRepo := persistence.NewGormWashingTypeRepository(db.DB)
	washingWorkRepo := persistence.NewGormWashingWorkRepository(db.DB)

	// Application services
	publisher := pricing.NewPublisher(serviceRepo, snapshotRepo, categoryRepo, productRepo, priceListCache, log)
	presenter := pricing.NewPresenter(serviceRepo, snapshotRepo, categoryRepo, productRepo, priceListCache, log)
	serviceService := applaundry.NewServiceService(serviceRepo, categoryRepo)
	orderService := applaundry.NewOrderService(orderRepo, customerRepo, washingWorkRepo, productRepo)
	customerService := applaundry.NewCustomerService(customerRepo)
	pickupService := applaundry.NewPickupService(pickupRepo, customerRepo, mail, log)
	contactService := applaundry.NewContactService(contactRepo, customerRepo, mail, log)
	washingTypeService := applaundry.NewWashingTypeService(washingTypeRepo)
	analysisService := report.NewAnalysisService(db.DB)

	jwtService := auth.NewJWTService(&cfg.JWT)

	digest := scheduler.NewDigestScheduler(cfg.Scheduler, cfg.Mail.DigestTo, publisher, mail, log)
	if err := digest.Start(); err != nil {
		log.Fatal("Failed to start digest scheduler", zap.Error(err))
	}

	engine := router.New(cfg, jwtService, log, router.Handlers{
		Health:   handler.NewHealthHandler(db),
		Pricing:  handler.NewPricingHandler(publisher, presenter),
		Service:  handler.NewServiceHandler(serviceService),
		Order:    handler.NewOrderHandler(orderService),
		Pickup:   handler.NewPickupHandler(pickupService),
		Contact:  handler.NewContactHandler(contactService),
		Washing:  handler.NewWashingHandler(washingTypeService, orderService),
		Customer: handler.NewCustomerHandler(customerService),
		Report:   handler.NewReportHandler(analysisService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := digest.Stop(ctx); err != nil {
		log.Error("Error stopping digest scheduler", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
