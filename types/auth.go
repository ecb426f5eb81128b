package types

import "time"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest identifier 可以是邮箱或用户名
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

func (r *LoginRequest) Account() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	return r.Email
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *UserInfo `json:"user"`
}

// PrivacyPatch 只修改传入的字段
type PrivacyPatch struct {
	Avatar    *bool `json:"avatar"`
	Signature *bool `json:"signature"`
	Stats     *bool `json:"stats"`
	History   *bool `json:"history"`
}

type UpdateProfileRequest struct {
	Username  *string       `json:"username"`
	AvatarURL *string       `json:"avatar_url"`
	Signature *string       `json:"signature"`
	Bio       *string       `json:"bio"`
	Privacy   *PrivacyPatch `json:"privacy"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
