package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/cache"
)

const (
	// PaymentMaxRequests caps initialize/verify calls per IP per window.
	PaymentMaxRequests = 20
	PaymentWindow      = 1 * time.Minute
)

// PaymentRateLimit throttles the payment proxy routes. Fails open when
// Redis is unreachable: a slow gateway is preferable to a dead checkout.
func PaymentRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := cache.RateLimitKey("payment", c.ClientIP())

		count, err := cache.IncrementRateLimit(key, PaymentWindow)
		if err != nil {
			c.Next()
			return
		}

		if count > PaymentMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many payment requests. Try again in a minute",
				"retry_after": int(PaymentWindow.Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", PaymentMaxRequests))
		remaining := PaymentMaxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		c.Next()
	}
}
