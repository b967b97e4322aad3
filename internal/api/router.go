package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/aibek/payments-admin/internal/events"
	"github.com/aibek/payments-admin/internal/handlers"
	"github.com/aibek/payments-admin/internal/interfaces"
	"github.com/aibek/payments-admin/internal/metrics"
	"github.com/aibek/payments-admin/internal/middleware"
	"github.com/aibek/payments-admin/internal/telemetry"
)

func NewRouter(paymentRepo interfaces.PaymentRepository, redisClient *redis.Client, publisher *events.Publisher) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())
	r.Use(metrics.Middleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	paymentHandler := handlers.NewPaymentHandler(paymentRepo, redisClient, publisher)

	// Health check
	r.GET("/health", paymentHandler.Health)

	// Payment routes
	payments := r.Group("/payments")
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.POST("", middleware.Idempotency(redisClient), paymentHandler.CreatePayment)
		payments.DELETE("", paymentHandler.DeletePaymentsBatch)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PATCH("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	return r
}
