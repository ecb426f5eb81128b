package handler

import (
	"Folio/pkg/response"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	DB *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", h.Check)
}

// Check 存活检查，顺带探测数据库
func (h *Health) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.Fail(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database unavailable", nil)
		return
	}
	response.Success(c, gin.H{"status": "ok", "time": time.Now().UTC()})
}
