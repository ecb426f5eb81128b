package models

import "time"

// ReviewLike 点赞记录，对应表 review_likes
// 行存在即表示已点赞；唯一键: user_id + review_id
type ReviewLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_review,priority:1" json:"user_id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;uniqueIndex:uk_likes_user_review,priority:2;index:idx_likes_review" json:"review_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ReviewLike) TableName() string { return "review_likes" }

// UserFavorite 收藏记录，对应表 user_favorites
// 与点赞不同，允许收藏自己的书评
type UserFavorite struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_favorites_user_review,priority:1" json:"user_id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;uniqueIndex:uk_favorites_user_review,priority:2;index:idx_favorites_review" json:"review_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserFavorite) TableName() string { return "user_favorites" }
