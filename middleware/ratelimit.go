package middleware

import (
	"Folio/pkg/log"
	"Folio/pkg/ratelimit"
	"Folio/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit 按客户端 IP 限流；限流后端出错时放行
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.L.Warn("rate limiter unavailable", zap.String("ip", c.ClientIP()), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			rateLimitedTotal.Inc()
			response.AbortError(c, response.RateLimited("too many requests, please slow down"))
			return
		}
		c.Next()
	}
}
