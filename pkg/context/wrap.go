package context

import (
	"Folio/pkg/log"
	"Folio/pkg/response"
	"Folio/types"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxActor     = "actor"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

var debug atomic.Bool

// SetDebug 开启后 500 响应会带上原始错误信息
func SetDebug(v bool) {
	debug.Store(v)
}

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			WriteError(c, err)
		}
	}
}

// WriteError 业务错误按自身状态码输出，其余一律 500
func WriteError(c *gin.Context, err error) {
	var be *response.BizError
	if errors.As(err, &be) {
		response.Fail(c, be.Status, be.Code, be.Msg, be.Data)
		return
	}

	log.L.Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(CtxRequestID)),
		zap.Error(err),
	)
	msg := "internal server error"
	if debug.Load() {
		msg = err.Error()
	}
	response.Fail(c, http.StatusInternalServerError, response.CodeInternal, msg, nil)
}

func SetActor(c *gin.Context, actor *types.Actor) {
	c.Set(CtxActor, actor)
}

// GetActor 未登录时返回 nil
func GetActor(c *gin.Context) *types.Actor {
	v, ok := c.Get(CtxActor)
	if !ok {
		return nil
	}
	actor, _ := v.(*types.Actor)
	return actor
}

// MustActor 用于必须登录的接口
func MustActor(c *gin.Context) (*types.Actor, error) {
	actor := GetActor(c)
	if actor == nil {
		return nil, response.Unauthenticated(response.CodeNotAuthenticated, "authentication required")
	}
	return actor, nil
}

// ParamID 解析路径中的正整数 ID
func ParamID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.InvalidInput(name + " must be a positive integer")
	}
	return id, nil
}

// BindJSON 绑定失败统一返回 400 INVALID_INPUT
func BindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return response.InvalidInput(err.Error())
	}
	return nil
}

// BindQuery 同上，用于 query 参数
func BindQuery(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return response.InvalidInput(err.Error())
	}
	return nil
}
