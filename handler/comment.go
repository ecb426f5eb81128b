package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Authenticator  *middleware.Authenticator
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := h.Authenticator.Required()
	comments := r.Group("/comments")
	comments.GET("/reviews/:id", h.Authenticator.Optional(), context.Wrap(h.List))
	comments.POST("/reviews/:id", authorize, context.Wrap(h.Create))
	comments.POST("/:id/reply", authorize, context.Wrap(h.Reply))
	comments.PUT("/:id", authorize, context.Wrap(h.Edit))
	comments.DELETE("/:id", authorize, context.Wrap(h.Delete))
	comments.PUT("/:id/status", authorize, middleware.RequireAdmin(), context.Wrap(h.Moderate))
}

// List 一级评论分页，附带回复
func (h *Comment) List(c *gin.Context) error {
	reviewID, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var page types.PageQuery
	if err := context.BindQuery(c, &page); err != nil {
		return err
	}
	result, err := h.CommentService.List(c.Request.Context(), reviewID, context.GetActor(c), page)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Comment) Create(c *gin.Context) error {
	reviewID, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.CommentRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.CommentService.Create(c.Request.Context(), context.GetActor(c), reviewID, req.Content)
	if err != nil {
		return err
	}
	response.Created(c, "comment created", item)
	return nil
}

func (h *Comment) Reply(c *gin.Context) error {
	parentID, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.CommentRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.CommentService.Reply(c.Request.Context(), context.GetActor(c), parentID, req.Content)
	if err != nil {
		return err
	}
	response.Created(c, "reply created", item)
	return nil
}

func (h *Comment) Edit(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.CommentRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.CommentService.Edit(c.Request.Context(), context.GetActor(c), id, req.Content)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "comment updated", item)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.CommentService.Delete(c.Request.Context(), context.GetActor(c), id); err != nil {
		return err
	}
	response.SuccessMsg(c, "comment deleted", nil)
	return nil
}

func (h *Comment) Moderate(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.CommentStatusRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.CommentService.Moderate(c.Request.Context(), context.GetActor(c), id, req.Status)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "comment status updated", item)
	return nil
}
