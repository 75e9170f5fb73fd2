// File: wednest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wednest/config"
	"wednest/handlers"
	"wednest/middleware"
	"wednest/routes"
	"wednest/services/cart"
	"wednest/services/directory"
	"wednest/services/profile"
	"wednest/services/request"
	"wednest/services/session"
	"wednest/upstream"
	"wednest/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream backend client.
	backend := upstream.NewClient(config.AppConfig.BackendURL, config.BackendTimeout(), logger)

	// Services.
	sessionStore := session.NewRedisStore(utils.GetSessionCacheClient(), config.SessionTTL())

	directoryService := &directory.DefaultDirectoryService{
		Backend: backend,
		Cache:   utils.GetCacheClient(),
		TTL:     config.VendorCacheTTL(),
		Logger:  logger,
	}

	cartService := &cart.DefaultCartService{
		Backend: backend,
		Vendors: directoryService,
		Logger:  logger,
	}

	requestService := &request.DefaultWorkflowService{
		Backend: backend,
		Cache:   utils.GetCacheClient(),
		Logger:  logger,
	}

	profileService := &profile.DefaultProfileService{
		Backend: backend,
	}

	// Handlers.
	authHandler := handlers.NewAuthHandler(backend, sessionStore)
	cartHandler := handlers.NewCartHandler(cartService)
	vendorHandler := handlers.NewVendorHandler(directoryService, backend)
	requestHandler := handlers.NewRequestHandler(requestService)
	coupleHandler := handlers.NewCoupleHandler(backend)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		LoginHandler:    authHandler.LoginHandler,
		RegisterHandler: authHandler.RegisterHandler,
		LogoutHandler:   authHandler.LogoutHandler,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCartHandler,
		AddToCartHandler:      cartHandler.AddToCartHandler,
		RemoveFromCartHandler: cartHandler.RemoveFromCartHandler,
		CheckoutHandler:       cartHandler.CheckoutHandler,
		ConfirmPaymentHandler: cartHandler.ConfirmPaymentHandler,

		// Vendor directory endpoints.
		VendorsByTypeHandler: vendorHandler.VendorsByTypeHandler,
		VendorDetailsHandler: vendorHandler.VendorDetailsHandler,

		// Request endpoints.
		CreateRequestHandler: requestHandler.CreateRequestHandler,
		RequestStatusHandler: requestHandler.RequestStatusHandler,
		UpdateRequestHandler: requestHandler.UpdateRequestHandler,

		// Dashboard endpoints.
		CoupleDashboardHandler: coupleHandler.CoupleDashboardHandler,
		CoupleRequestsHandler:  coupleHandler.CoupleRequestsHandler,
		VendorDashboardHandler: vendorHandler.VendorDashboardHandler,
		VendorRequestsHandler:  vendorHandler.VendorRequestsHandler,

		// Profile endpoints.
		UpdateCoupleProfileHandler: profileHandler.UpdateCoupleProfileHandler,
		UpdateVendorProfileHandler: profileHandler.UpdateVendorProfileHandler,
		VendorProfileHandler:       profileHandler.VendorProfileHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessionStore)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
