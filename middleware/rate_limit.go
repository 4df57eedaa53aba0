package middleware

import (
	"net/http"
	"time"

	"github.com/sumpierrezf/star-wars-api-with-token/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateLimit caps requests per client IP to limit per minute. A nil client or
// a non-positive limit disables it; Redis failures let the request through.
func RateLimit(rdb *redis.Client, limit int, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		ok, err := utils.AllowRequest(c.Request.Context(), rdb, c.ClientIP(), limit, time.Minute)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			utils.RateLimitRejections.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "Demasiadas solicitudes"})
			return
		}
		c.Next()
	}
}
