package types

import (
	"Folio/models"
	"time"
)

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CommentItem struct {
	ID        uint64     `json:"id"`
	ReviewID  uint64     `json:"review_id"`
	UserID    uint64     `json:"user_id"`
	ParentID  *uint64    `json:"parent_id"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	Author    *UserBrief `json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCommentItem(c *models.ReviewComment, author *models.User) *CommentItem {
	return &CommentItem{
		ID:        c.ID,
		ReviewID:  c.ReviewID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Status:    c.Status,
		Author:    NewUserBrief(author),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CommentThread 一级评论及其全部回复
type CommentThread struct {
	*CommentItem
	Replies []*CommentItem `json:"replies"`
}

type HasRepliesData struct {
	RepliesCount int64 `json:"replies_count"`
}
