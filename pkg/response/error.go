package response

import (
	"net/http"
)

// 稳定的机器可读错误码
const (
	CodeInvalidInput            = "INVALID_INPUT"
	CodeNotAuthenticated        = "NOT_AUTHENTICATED"
	CodeInvalidToken            = "INVALID_TOKEN"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeAccessDenied            = "ACCESS_DENIED"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeAccountBanned           = "ACCOUNT_BANNED"
	CodeEditWindowExpired       = "EDIT_WINDOW_EXPIRED"
	CodeNotFound                = "NOT_FOUND"
	CodeNotLiked                = "NOT_LIKED"
	CodeNotFavorited            = "NOT_FAVORITED"
	CodeSelfLikeForbidden       = "SELF_LIKE_FORBIDDEN"
	CodeAlreadyLiked            = "ALREADY_LIKED"
	CodeAlreadyFavorited        = "ALREADY_FAVORITED"
	CodeReviewExists            = "REVIEW_EXISTS"
	CodeUserExists              = "USER_EXISTS"
	CodeBookExists              = "BOOK_EXISTS"
	CodeHasReplies              = "HAS_REPLIES"
	CodeRateLimited             = "RATE_LIMITED"
	CodeInternal                = "INTERNAL_ERROR"
)

// BizError 业务错误，Status 为 HTTP 状态码，Code 为稳定错误码
type BizError struct {
	Status int
	Code   string
	Msg    string
	Data   any
}

func (e *BizError) Error() string {
	return e.Code + ": " + e.Msg
}

// Is 按错误码比较，便于 errors.Is(err, response.ErrNotFound) 之类的判断
func (e *BizError) Is(target error) bool {
	t, ok := target.(*BizError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithData 返回附带额外数据的副本
func (e *BizError) WithData(data any) *BizError {
	cp := *e
	cp.Data = data
	return &cp
}

func NewError(status int, code string, msg string) *BizError {
	return &BizError{
		Status: status,
		Code:   code,
		Msg:    msg,
	}
}

func Validation(code, msg string) *BizError {
	return NewError(http.StatusBadRequest, code, msg)
}

func InvalidInput(msg string) *BizError {
	return NewError(http.StatusBadRequest, CodeInvalidInput, msg)
}

func Unauthenticated(code, msg string) *BizError {
	return NewError(http.StatusUnauthorized, code, msg)
}

func Forbidden(code, msg string) *BizError {
	return NewError(http.StatusForbidden, code, msg)
}

func NotFound(code, msg string) *BizError {
	return NewError(http.StatusNotFound, code, msg)
}

func Conflict(code, msg string) *BizError {
	return NewError(http.StatusConflict, code, msg)
}

func RateLimited(msg string) *BizError {
	return NewError(http.StatusTooManyRequests, CodeRateLimited, msg)
}

func Internal(msg string) *BizError {
	return NewError(http.StatusInternalServerError, CodeInternal, msg)
}
