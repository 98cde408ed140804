package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	contactRateMax    = 5
	contactRateWindow = time.Minute
)

// ContactRateLimit returns a middleware that caps public contact submissions
// per client IP over a sliding one-minute window. Without a Redis client the
// limiter is a pass-through; a Redis error never blocks a legitimate request.
func ContactRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().Unix() / int64(contactRateWindow.Seconds())
		key := fmt.Sprintf("site:rate_limit:contact:%s:%d", ip, window)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, contactRateWindow+time.Second)
		}

		if count > contactRateMax {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":    false,
				"error": "Çok fazla istek. Lütfen biraz sonra tekrar deneyin.",
			})
			return
		}

		c.Next()
	}
}
