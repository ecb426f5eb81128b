package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	Authenticator  *middleware.Authenticator
	ProfileService service.IProfileService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	users := r.Group("/users")
	users.GET("/:id/profile", u.Authenticator.Optional(), context.Wrap(u.PublicProfile))
}

// PublicProfile 按隐私设置裁剪后的主页
func (u *User) PublicProfile(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	profile, err := u.ProfileService.Public(c.Request.Context(), id, context.GetActor(c))
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}
