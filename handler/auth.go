package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Authenticator *middleware.Authenticator
	AuthService   service.IAuthService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := u.Authenticator.Required()
	auth := r.Group("/auth")
	auth.POST("/register", context.Wrap(u.Register))
	auth.POST("/login", context.Wrap(u.Login))
	auth.GET("/profile", authorize, context.Wrap(u.Profile))
	auth.PUT("/profile", authorize, context.Wrap(u.UpdateProfile))
	auth.PUT("/password", authorize, context.Wrap(u.ChangePassword))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	resp, err := u.AuthService.Register(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		return err
	}
	response.Created(c, "registered", resp)
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	resp, err := u.AuthService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "logged in", resp)
	return nil
}

func (u *Auth) Profile(c *gin.Context) error {
	info, err := u.AuthService.Profile(c.Request.Context(), context.GetActor(c))
	if err != nil {
		return err
	}
	response.Success(c, info)
	return nil
}

func (u *Auth) UpdateProfile(c *gin.Context) error {
	var req types.UpdateProfileRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	info, err := u.AuthService.UpdateProfile(c.Request.Context(), context.GetActor(c), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "profile updated", info)
	return nil
}

func (u *Auth) ChangePassword(c *gin.Context) error {
	var req types.ChangePasswordRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	if err := u.AuthService.ChangePassword(c.Request.Context(), context.GetActor(c), &req); err != nil {
		return err
	}
	response.SuccessMsg(c, "password changed", nil)
	return nil
}
