package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// PageData 列表接口的 data 字段
type PageData[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func NewPage[T any](items []T, page, limit int, total int64) *PageData[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &PageData[T]{Items: items, Pagination: NewPagination(page, limit, total)}
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: "ok", Data: data})
}

func SuccessMsg(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: msg, Data: data})
}

func Created(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: msg, Data: data})
}

func Fail(c *gin.Context, status int, code string, msg string, data any) {
	c.JSON(status, Response{Success: false, Message: msg, Code: code, Data: data})
}

func Abort(c *gin.Context, status int, code string, msg string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Message: msg,
		Code:    code,
	})
}

// AbortError 中间件中使用，写出业务错误并终止
func AbortError(c *gin.Context, be *BizError) {
	c.AbortWithStatusJSON(be.Status, Response{
		Success: false,
		Message: be.Msg,
		Code:    be.Code,
		Data:    be.Data,
	})
}
