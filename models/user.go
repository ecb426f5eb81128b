package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	UserStatusActive = "active"
	UserStatusBanned = "banned"
)

// PrivacySettings 每个字段为 true 表示对其他人可见
type PrivacySettings struct {
	Avatar    bool `json:"avatar"`
	Signature bool `json:"signature"`
	Stats     bool `json:"stats"`
	History   bool `json:"history"`
}

func DefaultPrivacy() PrivacySettings {
	return PrivacySettings{Avatar: true, Signature: true, Stats: true, History: false}
}

// User 对应表 users
// total_reviews / total_likes_received 由 CounterService 维护，禁止直接写入
type User struct {
	ID                 uint64                              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email              string                              `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_users_email" json:"email"`
	Username           string                              `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_users_username" json:"username"`
	PasswordHash       string                              `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role               string                              `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	Status             string                              `gorm:"column:status;type:varchar(16);not null;default:active" json:"status"`
	AvatarURL          string                              `gorm:"column:avatar_url;type:varchar(500);not null;default:''" json:"avatar_url"`
	Signature          string                              `gorm:"column:signature;type:varchar(255);not null;default:''" json:"signature"`
	Bio                string                              `gorm:"column:bio;type:text" json:"bio"`
	Privacy            datatypes.JSONType[PrivacySettings] `gorm:"column:privacy" json:"privacy"`
	TotalReviews       int64                               `gorm:"column:total_reviews;not null;default:0" json:"total_reviews"`
	TotalLikesReceived int64                               `gorm:"column:total_likes_received;not null;default:0" json:"total_likes_received"`
	LastLoginAt        *time.Time                          `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt          time.Time                           `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time                           `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
func (u *User) IsBanned() bool { return u.Status == UserStatusBanned }
