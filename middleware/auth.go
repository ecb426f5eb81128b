package middleware

import (
	"Folio/dao"
	"Folio/pkg/context"
	"Folio/pkg/jwt"
	"Folio/pkg/log"
	"Folio/pkg/response"
	"Folio/types"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator 解析 Bearer token 并加载当前用户
// 每次请求都回表读取角色和状态，封禁立即生效
type Authenticator struct {
	Verifier jwt.Verifier
	UserDAO  *dao.UserDAO
}

func NewAuthenticator(verifier jwt.Verifier, users *dao.UserDAO) *Authenticator {
	return &Authenticator{Verifier: verifier, UserDAO: users}
}

// Required 必须登录
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, be := a.resolve(c)
		if be != nil {
			response.AbortError(c, be)
			return
		}
		if actor == nil {
			response.Abort(c, http.StatusUnauthorized, response.CodeNotAuthenticated, "authentication required")
			return
		}
		context.SetActor(c, actor)
		c.Next()
	}
}

// Optional 无效 token 按匿名处理，但封禁账号仍然拒绝
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, be := a.resolve(c)
		if be != nil && be.Code == response.CodeAccountBanned {
			response.AbortError(c, be)
			return
		}
		if actor != nil {
			context.SetActor(c, actor)
		}
		c.Next()
	}
}

// RequireAdmin 需在 Required 之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !context.GetActor(c).IsAdmin() {
			response.Abort(c, http.StatusForbidden, response.CodeInsufficientPermissions, "admin privileges required")
			return
		}
		c.Next()
	}
}

func (a *Authenticator) resolve(c *gin.Context) (*types.Actor, *response.BizError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, response.Unauthenticated(response.CodeInvalidToken, "malformed Authorization header")
	}

	claims, err := a.Verifier.Verify(parts[1])
	if err != nil {
		return nil, response.Unauthenticated(response.CodeInvalidToken, "invalid or expired token")
	}
	user, err := a.UserDAO.FindById(c.Request.Context(), claims.UserID)
	if err != nil {
		if !dao.IsNotFound(err) {
			log.L.Error("load user for token", zap.Uint64("user_id", claims.UserID), zap.Error(err))
		}
		return nil, response.Unauthenticated(response.CodeInvalidToken, "invalid or expired token")
	}
	if user.IsBanned() {
		return nil, response.Forbidden(response.CodeAccountBanned, "account is banned")
	}
	return types.ActorFromUser(user), nil
}
