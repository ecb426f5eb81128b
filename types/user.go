package types

import (
	"Folio/models"
	"time"
)

// UserInfo 本人可见的完整资料
type UserInfo struct {
	ID                 uint64                 `json:"id"`
	Email              string                 `json:"email"`
	Username           string                 `json:"username"`
	Role               string                 `json:"role"`
	Status             string                 `json:"status"`
	AvatarURL          string                 `json:"avatar_url"`
	Signature          string                 `json:"signature"`
	Bio                string                 `json:"bio"`
	Privacy            models.PrivacySettings `json:"privacy"`
	TotalReviews       int64                  `json:"total_reviews"`
	TotalLikesReceived int64                  `json:"total_likes_received"`
	LastLoginAt        *time.Time             `json:"last_login_at,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
}

func NewUserInfo(u *models.User) *UserInfo {
	return &UserInfo{
		ID:                 u.ID,
		Email:              u.Email,
		Username:           u.Username,
		Role:               u.Role,
		Status:             u.Status,
		AvatarURL:          u.AvatarURL,
		Signature:          u.Signature,
		Bio:                u.Bio,
		Privacy:            u.Privacy.Data(),
		TotalReviews:       u.TotalReviews,
		TotalLikesReceived: u.TotalLikesReceived,
		LastLoginAt:        u.LastLoginAt,
		CreatedAt:          u.CreatedAt,
	}
}

// UserBrief 列表中展示的作者信息
type UserBrief struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

func NewUserBrief(u *models.User) *UserBrief {
	if u == nil {
		return nil
	}
	return &UserBrief{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL}
}

// Visibility 非本人查看时各字段是否可见
type Visibility struct {
	Avatar    bool `json:"avatar"`
	Signature bool `json:"signature"`
	Stats     bool `json:"stats"`
	History   bool `json:"history"`
}

type ProfileStats struct {
	TotalReviews       int64 `json:"total_reviews"`
	TotalLikesReceived int64 `json:"total_likes_received"`
	FavoritesCount     int64 `json:"favorites_count"`
	CommentsCount      int64 `json:"comments_count"`
}

type ProfileHistory struct {
	Reviews   []*models.Review        `json:"reviews"`
	Favorites []*models.Review        `json:"favorites"`
	Comments  []*models.ReviewComment `json:"comments"`
}

// PublicProfile 隐藏的字段为空，stats/history 不可见时为 null
type PublicProfile struct {
	ID         uint64          `json:"id"`
	Username   string          `json:"username"`
	Role       string          `json:"role"`
	AvatarURL  string          `json:"avatar_url"`
	Signature  string          `json:"signature"`
	Bio        string          `json:"bio"`
	CreatedAt  time.Time       `json:"created_at"`
	IsOwner    bool            `json:"is_owner"`
	Visibility Visibility      `json:"visibility"`
	Stats      *ProfileStats   `json:"stats"`
	History    *ProfileHistory `json:"history"`
}

type UserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LogListRequest struct {
	PageQuery
	Action string `form:"action"`
	UserID uint64 `form:"user_id"`
}
