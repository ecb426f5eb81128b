package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Admin struct {
	Authenticator *middleware.Authenticator
	ReviewService service.IReviewService
	AdminService  service.IAdminService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/admin", h.Authenticator.Required(), middleware.RequireAdmin())
	admin.PUT("/reviews/:id/status", context.Wrap(h.ReviewStatus))
	admin.PUT("/reviews/:id/featured", context.Wrap(h.ReviewFeatured))
	admin.DELETE("/reviews/:id", context.Wrap(h.PurgeReview))
	admin.PUT("/users/:id/status", context.Wrap(h.UserStatus))
	admin.GET("/logs", context.Wrap(h.Logs))
}

func (h *Admin) ReviewStatus(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.ReviewStatusRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	review, err := h.ReviewService.Moderate(c.Request.Context(), context.GetActor(c), id, req.Status)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "review status updated", review)
	return nil
}

func (h *Admin) ReviewFeatured(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.ReviewFeatureRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	review, err := h.ReviewService.Feature(c.Request.Context(), context.GetActor(c), id, *req.Featured)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "review updated", review)
	return nil
}

// PurgeReview 物理删除
func (h *Admin) PurgeReview(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ReviewService.Purge(c.Request.Context(), context.GetActor(c), id); err != nil {
		return err
	}
	response.SuccessMsg(c, "review purged", nil)
	return nil
}

func (h *Admin) UserStatus(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.UserStatusRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	info, err := h.AdminService.SetUserStatus(c.Request.Context(), context.GetActor(c), id, req.Status)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "user status updated", info)
	return nil
}

func (h *Admin) Logs(c *gin.Context) error {
	var req types.LogListRequest
	if err := context.BindQuery(c, &req); err != nil {
		return err
	}
	page, err := h.AdminService.ListLogs(c.Request.Context(), context.GetActor(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}
