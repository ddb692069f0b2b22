package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/cache"
	"github.com/tapnex/store_api/internal/config"
	"github.com/tapnex/store_api/internal/handler"
	"github.com/tapnex/store_api/internal/middleware"
	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/worker"
	"github.com/tapnex/store_api/pkg/allorigins"
	"github.com/tapnex/store_api/pkg/storeapi"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	if cfg.Env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// 3. Connect to Redis
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// 4. Upstream clients
	storeClient := storeapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	relayClient := allorigins.NewClient(cfg.Relay.BaseURL, cfg.Relay.Timeout)

	// 5. Caches
	checkoutCache := cache.NewCheckoutCache(redisClient, cfg.Checkout.SessionTTL)
	settingsCache := cache.NewSettingsCache(redisClient, cfg.Settings.CacheTTL)

	// 6. Services
	catalogService := service.NewCatalogService(storeClient, relayClient)
	checkoutService := service.NewCheckoutService(checkoutCache, storeClient, catalogService, cfg.Checkout.TaxRate)
	supportService := service.NewSupportService(storeClient)
	settingsService := service.NewSettingsService(storeClient, settingsCache)
	pagesService := service.NewPagesService()
	adminCatalogService := service.NewAdminCatalogService(storeClient)
	adminAuthService := service.NewAdminAuthService(cfg.Admin, cfg.JWTSecret)

	// 7. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	settingsWorker := worker.NewSettingsRefreshWorker(settingsService, cfg.Settings.RefreshInterval)
	go settingsWorker.Start(workerCtx)

	// 8. Handlers
	healthHandler := handler.NewHealthHandler(storeClient)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	supportHandler := handler.NewSupportHandler(supportService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	pagesHandler := handler.NewPagesHandler(pagesService)
	authHandler := handler.NewAuthHandler(adminAuthService)
	adminProductHandler := handler.NewAdminProductHandler(adminCatalogService)

	// 9. Rate limiters
	loginLimiter := middleware.NewAttemptRateLimiter(redisClient, "login", 5, 15*time.Minute)
	contactLimiter := middleware.NewAttemptRateLimiter(redisClient, "contact", 10, time.Hour)

	// 10. Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthHandler.Health)

		v1.GET("/products", catalogHandler.ListProducts)
		v1.GET("/products/featured", catalogHandler.FeaturedProducts)
		v1.GET("/products/:identifier", catalogHandler.GetProduct)
		v1.GET("/categories", catalogHandler.ListCategories)

		v1.POST("/checkout/session", checkoutHandler.BeginCheckout)
		v1.GET("/checkout/session/:token", checkoutHandler.OpenBilling)
		v1.POST("/checkout/session/:token/order", checkoutHandler.SubmitOrder)
		v1.GET("/checkout/confirmation/:token", checkoutHandler.Confirmation)

		v1.POST("/contact", contactLimiter.Middleware(), supportHandler.SubmitContact)
		v1.GET("/faqs", supportHandler.ListFAQs)
		v1.GET("/orders/:orderNumber", supportHandler.TrackOrder)

		v1.GET("/settings", settingsHandler.GetSettings)
		v1.GET("/pages/:slug", pagesHandler.GetPage)

		v1.POST("/admin/auth/login", loginLimiter.Middleware(), authHandler.Login)

		admin := v1.Group("/admin", middleware.JWTMiddleware(cfg.JWTSecret))
		{
			admin.POST("/products", adminProductHandler.CreateProduct)
			admin.PUT("/products/:id", adminProductHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminProductHandler.DeleteProduct)
			admin.GET("/contact-messages", supportHandler.ListContactMessages)
		}
	}

	// 11. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server stopped")
}
