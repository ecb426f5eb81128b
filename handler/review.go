package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Review struct {
	Authenticator *middleware.Authenticator
	ReviewService service.IReviewService
	ViewService   service.IViewService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := h.Authenticator.Required()
	optional := h.Authenticator.Optional()
	reviews := r.Group("/reviews")
	reviews.GET("", optional, context.Wrap(h.List))
	reviews.GET("/:id", optional, context.Wrap(h.Get))
	reviews.POST("", authorize, context.Wrap(h.Create))
	reviews.PUT("/:id", authorize, context.Wrap(h.Update))
	reviews.DELETE("/:id", authorize, context.Wrap(h.Delete))
	reviews.POST("/:id/view", optional, context.Wrap(h.View))
}

func (h *Review) List(c *gin.Context) error {
	var req types.ReviewListRequest
	if err := context.BindQuery(c, &req); err != nil {
		return err
	}
	page, err := h.ReviewService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (h *Review) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.ReviewService.Get(c.Request.Context(), id, context.GetActor(c))
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Review) Create(c *gin.Context) error {
	var req types.CreateReviewRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	review, err := h.ReviewService.Create(c.Request.Context(), context.GetActor(c), &req)
	if err != nil {
		return err
	}
	response.Created(c, "review created", review)
	return nil
}

func (h *Review) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateReviewRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	review, err := h.ReviewService.Update(c.Request.Context(), context.GetActor(c), id, &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "review updated", review)
	return nil
}

// Delete 软删除
func (h *Review) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ReviewService.Delete(c.Request.Context(), context.GetActor(c), id); err != nil {
		return err
	}
	response.SuccessMsg(c, "review deleted", nil)
	return nil
}

func (h *Review) View(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.ViewService.RecordView(c.Request.Context(), id, context.GetActor(c), c.ClientIP())
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
