package middleware

import (
	"Folio/pkg/context"
	"Folio/pkg/log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestID 透传或生成请求 ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(context.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GinZap 访问日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString(context.CtxRequestID)),
		}
		if actor := context.GetActor(c); actor != nil {
			fields = append(fields, zap.Uint64("user_id", actor.ID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.L.Error("http request", fields...)
		case status >= 400:
			log.L.Warn("http request", fields...)
		default:
			log.L.Info("http request", fields...)
		}
	}
}
