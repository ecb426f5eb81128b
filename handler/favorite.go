package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Favorite struct {
	Authenticator   *middleware.Authenticator
	FavoriteService service.IFavoriteService
}

func (h *Favorite) RegisterRouter(r gin.IRouter) {
	authorize := h.Authenticator.Required()
	favorites := r.Group("/favorites")
	favorites.GET("/stats", context.Wrap(h.Stats))
	favorites.GET("/my", authorize, context.Wrap(h.My))
	favorites.POST("/reviews/:id", authorize, context.Wrap(h.Favorite))
	favorites.DELETE("/reviews/:id", authorize, context.Wrap(h.Unfavorite))
	favorites.GET("/reviews/:id", h.Authenticator.Optional(), context.Wrap(h.Status))
}

func (h *Favorite) Favorite(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.FavoriteService.Favorite(c.Request.Context(), context.GetActor(c), id)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "favorited", status)
	return nil
}

func (h *Favorite) Unfavorite(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.FavoriteService.Unfavorite(c.Request.Context(), context.GetActor(c), id)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "unfavorited", status)
	return nil
}

func (h *Favorite) Status(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.FavoriteService.Status(c.Request.Context(), id, context.GetActor(c))
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}

func (h *Favorite) Stats(c *gin.Context) error {
	stats, err := h.FavoriteService.Stats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

func (h *Favorite) My(c *gin.Context) error {
	var page types.PageQuery
	if err := context.BindQuery(c, &page); err != nil {
		return err
	}
	result, err := h.FavoriteService.ListFavorites(c.Request.Context(), context.GetActor(c), page)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
