package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aibek/payments-admin/internal/api"
	"github.com/aibek/payments-admin/internal/config"
	"github.com/aibek/payments-admin/internal/events"
	"github.com/aibek/payments-admin/internal/interfaces"
	"github.com/aibek/payments-admin/internal/repository"
	"github.com/aibek/payments-admin/internal/telemetry"
)

func main() {
	// Initialize telemetry
	if err := telemetry.InitTelemetry("payments-admin"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting payments admin service")

	cfg := config.Load()

	// Persistence: Postgres when configured, otherwise an in-memory store
	// for local development.
	var paymentRepo interfaces.PaymentRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			telemetry.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		pgRepo := repository.NewPaymentRepository(db)
		if err := pgRepo.InitDB(); err != nil {
			telemetry.Logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		paymentRepo = pgRepo
	} else {
		telemetry.Logger.Warn("DATABASE_URL not set, using in-memory store")
		paymentRepo = repository.NewMemoryRepository()
	}

	// Connect to Redis (optional, enables idempotency replay)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisClient.Close()
	}

	// Connect to Kafka (optional, enables change events)
	publisher := events.NewPublisher(cfg.KafkaBrokers)
	defer publisher.Close()

	r := api.NewRouter(paymentRepo, redisClient, publisher)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Payments admin service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
