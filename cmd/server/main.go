package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/shoply/backend/internal/application/catalog"
	"github.com/shoply/backend/internal/application/importapp"
	orderingapp "github.com/shoply/backend/internal/application/ordering"
	"github.com/shoply/backend/internal/infrastructure/auth"
	"github.com/shoply/backend/internal/infrastructure/config"
	"github.com/shoply/backend/internal/infrastructure/event"
	"github.com/shoply/backend/internal/infrastructure/logger"
	"github.com/shoply/backend/internal/infrastructure/persistence"
	"github.com/shoply/backend/internal/interfaces/http/handler"
	"github.com/shoply/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting shoply backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	// Repositories
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	addressRepo := persistence.NewGormDeliveryAddressRepository(db.DB)

	// Application services
	storeService := catalogapp.NewStoreService(storeRepo, log)
	productService := catalogapp.NewProductService(productRepo, storeRepo, log)
	cartService := orderingapp.NewCartService(orderRepo, productRepo)
	addressService := orderingapp.NewAddressService(addressRepo, orderRepo)
	importService := importapp.NewProductImportService(storeRepo, productRepo, cfg.Import.MaxErrors, log)

	txScope := persistence.NewGormOrderingTransactionScope(db.DB)
	orderService := orderingapp.NewOrderService(txScope, orderRepo, log)

	// Event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	notifier := orderingapp.NewLogNotifier(log)
	confirmedHandler := orderingapp.NewOrderConfirmedHandler(notifier, log)
	eventBus.Subscribe(confirmedHandler)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("error stopping event bus", zap.Error(err))
		}
	}()
	orderService.SetEventPublisher(eventBus)
	log.Info("event handlers registered",
		zap.Strings("order_confirmed_events", confirmedHandler.EventTypes()))

	jwtService := auth.NewJWTService(cfg.JWT)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		System:  handler.NewSystemHandler(db, version),
		Store:   handler.NewStoreHandler(storeService),
		Product: handler.NewProductHandler(productService),
		Cart:    handler.NewCartHandler(cartService),
		Order:   handler.NewOrderHandler(orderService),
		Address: handler.NewAddressHandler(addressService),
		Import:  handler.NewImportHandler(importService, cfg.Import),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
