package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Authenticator *middleware.Authenticator
	LikeService   service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := h.Authenticator.Required()
	optional := h.Authenticator.Optional()
	likes := r.Group("/likes")
	likes.POST("/reviews/batch", optional, context.Wrap(h.BatchStatus))
	likes.POST("/reviews/:id", authorize, context.Wrap(h.Like))
	likes.DELETE("/reviews/:id", authorize, context.Wrap(h.Unlike))
	likes.GET("/reviews/:id", optional, context.Wrap(h.Status))
	likes.GET("/my", authorize, context.Wrap(h.My))
}

func (h *Like) Like(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.LikeService.Like(c.Request.Context(), context.GetActor(c), id)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "liked", status)
	return nil
}

func (h *Like) Unlike(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.LikeService.Unlike(c.Request.Context(), context.GetActor(c), id)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "unliked", status)
	return nil
}

func (h *Like) Status(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.LikeService.Status(c.Request.Context(), id, context.GetActor(c))
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}

// BatchStatus 最多 50 个 id
func (h *Like) BatchStatus(c *gin.Context) error {
	var req types.BatchLikeRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	result, err := h.LikeService.BatchStatus(c.Request.Context(), req.ReviewIDs, context.GetActor(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Like) My(c *gin.Context) error {
	var page types.PageQuery
	if err := context.BindQuery(c, &page); err != nil {
		return err
	}
	result, err := h.LikeService.ListLiked(c.Request.Context(), context.GetActor(c), page)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
