package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-client/config"
	v1 "go-jobboard-client/internal/delivery/http/v1"
	"go-jobboard-client/internal/gateway/rest"
	"go-jobboard-client/internal/notifier"
	"go-jobboard-client/internal/session"
	"go-jobboard-client/internal/usecase"
	"go-jobboard-client/pkg/logger"
	"go-jobboard-client/pkg/redis"
	"go-jobboard-client/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board client", "port", cfg.Port, "api", cfg.APIBaseURL)

	// 3. Setup Redis (optional; sessions and cooldowns degrade to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory stores", "error", err)
	}
	defer redis.Close()

	// 4. Setup Backend Gateways
	apiClient := rest.NewClient(cfg.APIBaseURL, cfg.APITimeout())
	userGateway := rest.NewUserGateway(apiClient)
	jobGateway := rest.NewJobGateway(apiClient)
	applicationGateway := rest.NewApplicationGateway(apiClient)
	cvGateway := rest.NewCVGateway(apiClient)

	// 5. Setup Stores and the Notification Engine
	sessions := session.NewStore(redis.Client(), cfg.SessionTTL)
	cooldowns := notifier.NewCooldownStore(redis.Client())
	feed := notifier.NewFeed()
	monitors := notifier.NewManager(applicationGateway, feed, cooldowns, cfg.PollInterval())
	defer monitors.StopAll()

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userGateway, sessions, monitors, validate)
	jobUC := usecase.NewJobUsecase(jobGateway)
	applicationUC := usecase.NewApplicationUsecase(applicationGateway, jobGateway)
	cvUC := usecase.NewCVUsecase(cvGateway)
	adminUC := usecase.NewAdminUsecase(userGateway, jobGateway, applicationGateway, cvGateway)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		CVUC:          cvUC,
		AdminUC:       adminUC,
		Monitors:      monitors,
		Feed:          feed,
		Sessions:      sessions,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
