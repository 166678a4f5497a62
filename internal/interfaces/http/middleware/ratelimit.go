package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orgjet/internal/infrastructure/ratelimit"
	"orgjet/internal/shared/utils"
)

// RateLimit enforces a per-IP request budget over a fixed window. When the
// limiter backend is unreachable the request is allowed; rate limiting must
// never take the API down with it.
func RateLimit(limiter ratelimit.Limiter, requestsPerMin int) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), requestsPerMin, time.Minute)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
