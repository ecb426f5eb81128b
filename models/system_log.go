package models

import "time"

const (
	ActionReviewView   = "review_view"
	ActionUserLogin    = "user_login"
	ActionUserRegister = "user_register"
	ActionUserStatus   = "user_status"
	ActionReviewStatus = "review_status"
	ActionReviewPurge  = "review_purge"
	ActionBookDelete   = "book_delete"
	ActionCommentMod   = "comment_status"
)

// SystemLog 审计/行为日志，ID 使用 snowflake 生成
// review_view 行同时作为浏览去重窗口的依据
type SystemLog struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID     *uint64   `gorm:"column:user_id;index:idx_logs_user" json:"user_id,omitempty"`
	Action     string    `gorm:"column:action;type:varchar(32);not null;index:idx_logs_action_target,priority:1" json:"action"`
	TargetType string    `gorm:"column:target_type;type:varchar(32);not null;default:''" json:"target_type"`
	TargetID   uint64    `gorm:"column:target_id;not null;default:0;index:idx_logs_action_target,priority:2" json:"target_id"`
	Actor      string    `gorm:"column:actor;type:varchar(64);not null;default:''" json:"actor"`
	IPAddress  string    `gorm:"column:ip_address;type:varchar(64);not null;default:''" json:"ip_address"`
	Detail     string    `gorm:"column:detail;type:varchar(500);not null;default:''" json:"detail"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_logs_action_target,priority:3" json:"created_at"`
}

func (SystemLog) TableName() string { return "system_logs" }
