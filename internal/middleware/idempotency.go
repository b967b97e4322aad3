package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/aibek/payments-admin/internal/models"
)

// ContextKey is where the handler finds the request's idempotency key.
const ContextKey = "idempotency_key"

// CacheKey builds the Redis key for an Idempotency-Key header value.
func CacheKey(key string) string {
	return fmt.Sprintf("idempotency:%s", key)
}

// Idempotency replays the previously created payment when a request repeats
// an Idempotency-Key. The header is optional; requests without one pass
// through, as does everything when Redis is not configured.
func Idempotency(redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || redisClient == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		cached, err := redisClient.Get(ctx, CacheKey(key)).Result()
		if err == nil {
			var payment models.Payment
			if err := json.Unmarshal([]byte(cached), &payment); err == nil {
				c.JSON(http.StatusOK, payment)
				c.Abort()
				return
			}
		}

		c.Set(ContextKey, key)
		c.Next()
	}
}
