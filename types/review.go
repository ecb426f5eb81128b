package types

import "Folio/models"

type CreateReviewRequest struct {
	BookID  uint64 `json:"book_id" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type UpdateReviewRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Rating  *int    `json:"rating"`
}

type ReviewListRequest struct {
	PageQuery
	BookID   uint64 `form:"book_id"`
	UserID   uint64 `form:"user_id"`
	Featured bool   `form:"featured"`
	Sort     string `form:"sort"`
}

type ReviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReviewFeatureRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

type BookBrief struct {
	ID     uint64 `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// ReviewDetail 书评详情，附带作者、书籍以及当前用户的互动状态
type ReviewDetail struct {
	*models.Review
	Author      *UserBrief `json:"author"`
	Book        *BookBrief `json:"book"`
	IsLiked     bool       `json:"is_liked"`
	IsFavorited bool       `json:"is_favorited"`
}

type ViewResult struct {
	Views   int64 `json:"views"`
	Counted bool  `json:"counted"`
}
