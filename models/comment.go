package models

import "time"

const (
	CommentStatusApproved = "approved"
	CommentStatusPending  = "pending"
	CommentStatusRejected = "rejected"
)

func ValidCommentStatus(s string) bool {
	switch s {
	case CommentStatusApproved, CommentStatusPending, CommentStatusRejected:
		return true
	}
	return false
}

// ReviewComment 评论表
// parent_id 为空表示一级评论；回复只挂在一级评论下，最多两层
type ReviewComment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;index:idx_comments_review_parent,priority:1" json:"review_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comments_user" json:"user_id"`
	ParentID  *uint64   `gorm:"column:parent_id;index:idx_comments_review_parent,priority:2" json:"parent_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Status    string    `gorm:"column:status;type:varchar(16);not null;default:approved" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User   *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Review *Review        `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
	Parent *ReviewComment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ReviewComment) TableName() string { return "review_comments" }

func (c *ReviewComment) IsTopLevel() bool { return c.ParentID == nil }
