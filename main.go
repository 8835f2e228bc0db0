// File: playdash/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playdash/config"
	"playdash/cron"
	sheetsRepo "playdash/database/repository/sheets"
	"playdash/handlers"
	"playdash/middleware"
	"playdash/routes"
	"playdash/services/dashboard"
	"playdash/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := sheetsRepo.NewSheetsStore(
		ctx,
		config.AppConfig.SheetsCredentialsFile,
		config.AppConfig.SheetsSpreadsheetID,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SheetsCacheTTLMinutes)*time.Minute,
	)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sheets store: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	dashboardService := dashboard.NewDashboardService()
	dashboardHandler := handlers.NewDashboardHandler(store, dashboardService, logger)

	// Register routes.
	routes.RegisterRoutes(router, dashboardHandler)

	// Background cache warmer.
	stopWarmer := cron.StartCacheWarmer(store)

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

	stopWarmer()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
