package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aibek/payments-admin/internal/events"
	"github.com/aibek/payments-admin/internal/interfaces"
	"github.com/aibek/payments-admin/internal/middleware"
	"github.com/aibek/payments-admin/internal/models"
	"github.com/aibek/payments-admin/internal/telemetry"
	"github.com/aibek/payments-admin/internal/validation"
)

type PaymentHandler struct {
	repo        interfaces.PaymentRepository
	redisClient *redis.Client
	publisher   *events.Publisher
}

func NewPaymentHandler(repo interfaces.PaymentRepository, redisClient *redis.Client, publisher *events.Publisher) *PaymentHandler {
	return &PaymentHandler{
		repo:        repo,
		redisClient: redisClient,
		publisher:   publisher,
	}
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		telemetry.Logger.Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	payment, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		telemetry.Logger.Error("Failed to fetch payment", zap.String("payment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Warn("Invalid payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	input, err := validation.Create(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			telemetry.Logger.Warn("Payment validation failed", zap.String("reason", verr.Reason))
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.repo.Create(ctx, input)
	if err != nil {
		telemetry.Logger.Error("Failed to save payment to database", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	telemetry.Logger.Info("Payment created",
		zap.String("payment_id", payment.ID),
		zap.Float64("amount", payment.Amount),
	)

	// Cache for idempotency replay when the request carried a key
	if key := c.GetString(middleware.ContextKey); key != "" && h.redisClient != nil {
		paymentJSON, _ := json.Marshal(payment)
		h.redisClient.Set(ctx, middleware.CacheKey(key), paymentJSON, 24*time.Hour)
	}

	h.publish(c, events.ChangeEvent{Action: events.ActionCreated, PaymentID: payment.ID, Payment: payment})

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		telemetry.Logger.Error("Failed to fetch payment", zap.String("payment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Warn("Invalid payment update", zap.String("payment_id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	patch, err := validation.Update(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			telemetry.Logger.Warn("Payment update validation failed",
				zap.String("payment_id", id), zap.String("reason", verr.Reason))
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.repo.Update(ctx, id, patch)
	if errors.Is(err, interfaces.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		telemetry.Logger.Error("Failed to update payment", zap.String("payment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	h.publish(c, events.ChangeEvent{Action: events.ActionUpdated, PaymentID: payment.ID, Payment: payment})

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		telemetry.Logger.Error("Failed to fetch payment", zap.String("payment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	if err := h.repo.DeleteOne(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		telemetry.Logger.Error("Failed to delete payment", zap.String("payment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	h.publish(c, events.ChangeEvent{Action: events.ActionDeleted, PaymentID: id, Deleted: []string{id}})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment deleted successfully"})
}

type deleteBatchRequest struct {
	IDs []string `json:"ids"`
}

func (h *PaymentHandler) DeletePaymentsBatch(c *gin.Context) {
	var req deleteBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'ids' array"})
		return
	}

	deleted, err := h.repo.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		telemetry.Logger.Error("Failed to delete payments", zap.Int("requested", len(req.IDs)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payments"})
		return
	}

	telemetry.Logger.Info("Payments deleted",
		zap.Int("requested", len(req.IDs)),
		zap.Int("deleted", deleted),
	)

	h.publish(c, events.ChangeEvent{Action: events.ActionDeleted, Deleted: req.IDs})

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

func (h *PaymentHandler) Health(c *gin.Context) {
	ok, err := h.repo.HealthCheck(c.Request.Context())
	if err != nil {
		telemetry.Logger.Error("Health check faulted", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "error",
			"api":      "ok",
			"database": "error",
			"error":    err.Error(),
		})
		return
	}
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"api":      "ok",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"api":       "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *PaymentHandler) publish(c *gin.Context, event events.ChangeEvent) {
	if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
		telemetry.Logger.Error("Failed to publish change event",
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
}
