package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"bistro/docs"
	"bistro/internal/auth"
	"bistro/internal/cache"
	"bistro/internal/config"
	"bistro/internal/db"
	"bistro/internal/handler"
	"bistro/internal/logging"
	"bistro/internal/processor"
	"bistro/internal/repository"
	"bistro/internal/router"
	"bistro/internal/service"
)

// @title Bistro API
// @version 1.0
// @description Restaurant ordering API: menu, carts, payments and admin dashboards behind bearer-token auth.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := db.EnsureIndexes(ctx, database); err != nil {
		// the server still works; duplicate registrations just lose their race protection
		log.Warn("index reconciliation incomplete", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	if cacheClient == nil {
		log.Info("REDIS_ADDR empty, menu cache disabled")
	} else if err := cacheClient.Ping(ctx); err != nil {
		log.Warn("redis unavailable, menu served uncached", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents will fail")
	}
	intents := processor.NewStripeProcessor(cfg.StripeSecretKey, cfg.PaymentCurrency)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	menuRepo := repository.NewMenuRepository(database)
	cartRepo := repository.NewCartRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(jwtService)
	userService := service.NewUserService(userRepo)
	menuService := service.NewMenuService(menuRepo, cacheClient, cfg.MenuCacheTTL, log)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(paymentRepo, cartRepo, intents, log)
	statsService := service.NewStatsService(statsRepo)
	reviewService := service.NewReviewService(reviewRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, log, jwtService, userService, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Menu:    handler.NewMenuHandler(menuService),
		Cart:    handler.NewCartHandler(cartService),
		Payment: handler.NewPaymentHandler(paymentService),
		Stats:   handler.NewStatsHandler(statsService),
		Review:  handler.NewReviewHandler(reviewService),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	log.Info("swagger documentation available", zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info("bistro server listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
