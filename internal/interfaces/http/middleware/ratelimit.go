package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dropcircle/internal/infrastructure/ratelimit"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

// RateLimit returns a middleware enforcing per-IP sliding-window limits on a
// public endpoint. A limiter failure admits the request; protecting the
// endpoint is not worth taking the whole surface down with Redis.
func RateLimit(limiter ratelimit.RateLimiter, scope string, limits ratelimit.Limits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable, admitting request", "scope", scope, "error", err)
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
