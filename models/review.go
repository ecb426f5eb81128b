package models

import "time"

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
	ReviewStatusHidden   = "hidden"
)

func ValidReviewStatus(s string) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected, ReviewStatusHidden:
		return true
	}
	return false
}

// Review 对应表 reviews
// 唯一键: user_id + book_id（hidden 状态同样占用）
type Review struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID        uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_reviews_user_book,priority:1" json:"user_id"`
	BookID        uint64    `gorm:"column:book_id;not null;uniqueIndex:uk_reviews_user_book,priority:2;index:idx_reviews_book_status,priority:1" json:"book_id"`
	Title         string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	Rating        int       `gorm:"column:rating;not null" json:"rating"`
	Status        string    `gorm:"column:status;type:varchar(16);not null;default:approved;index:idx_reviews_book_status,priority:2" json:"status"`
	Views         int64     `gorm:"column:views;not null;default:0" json:"views"`
	LikesCount    int64     `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CommentsCount int64     `gorm:"column:comments_count;not null;default:0" json:"comments_count"`
	IsFeatured    bool      `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	CreatedAt     time.Time `gorm:"column:created_at;index:idx_reviews_created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string { return "reviews" }

func (r *Review) IsApproved() bool { return r.Status == ReviewStatusApproved }
