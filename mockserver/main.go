package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaxbook/config"
	"vaxbook/database"
	"vaxbook/database/repository"
	"vaxbook/routes"
	"vaxbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := &config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Storage: MongoDB when DATABASE_URL is set, process memory otherwise.
	var repos *repository.Repositories
	if cfg.DatabaseURL != "" {
		client, err := database.InitDB(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("main: database unavailable", zap.Error(err))
		}
		defer database.CloseDB(context.Background())
		repos = repository.NewMongo(client.Database(cfg.DatabaseName))
		utils.StartHealthMonitor(ctx, client, utils.HealthCheckInterval)
	} else {
		logger.Info("main: DATABASE_URL not set, using in-memory storage")
		repos = repository.NewMemory()
		utils.StartHealthMonitor(ctx, nil, utils.HealthCheckInterval)
	}

	seeded, err := repository.SeedVaccines(ctx, repos.Vaccines)
	if err != nil {
		logger.Fatal("main: failed to seed vaccine catalogue", zap.Error(err))
	}
	if seeded > 0 {
		logger.Info("main: seeded vaccine catalogue", zap.Int("count", seeded))
	}

	router := routes.NewServer(repos, cfg, logger)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
