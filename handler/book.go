package handler

import (
	"Folio/middleware"
	"Folio/pkg/context"
	"Folio/pkg/response"
	"Folio/service"
	"Folio/types"

	"github.com/gin-gonic/gin"
)

type Book struct {
	Authenticator *middleware.Authenticator
	BookService   service.IBookService
	TagService    service.ITagService
}

func (b *Book) RegisterRouter(r gin.IRouter) {
	authorize := b.Authenticator.Required()
	books := r.Group("/books")
	books.GET("", context.Wrap(b.List))
	books.GET("/:id", context.Wrap(b.Get))
	books.POST("", authorize, context.Wrap(b.Create))
	books.PUT("/:id", authorize, context.Wrap(b.Update))
	books.DELETE("/:id", authorize, middleware.RequireAdmin(), context.Wrap(b.Delete))

	r.GET("/tags", context.Wrap(b.PopularTags))
}

func (b *Book) List(c *gin.Context) error {
	var req types.BookListRequest
	if err := context.BindQuery(c, &req); err != nil {
		return err
	}
	page, err := b.BookService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (b *Book) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	book, err := b.BookService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, book)
	return nil
}

func (b *Book) Create(c *gin.Context) error {
	var req types.CreateBookRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	book, err := b.BookService.Create(c.Request.Context(), context.GetActor(c), &req)
	if err != nil {
		return err
	}
	response.Created(c, "book created", book)
	return nil
}

func (b *Book) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateBookRequest
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	book, err := b.BookService.Update(c.Request.Context(), context.GetActor(c), id, &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "book updated", book)
	return nil
}

func (b *Book) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := b.BookService.Delete(c.Request.Context(), context.GetActor(c), id); err != nil {
		return err
	}
	response.SuccessMsg(c, "book deleted", nil)
	return nil
}

func (b *Book) PopularTags(c *gin.Context) error {
	var req types.TagListRequest
	if err := context.BindQuery(c, &req); err != nil {
		return err
	}
	tags, err := b.TagService.Popular(c.Request.Context(), req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}
