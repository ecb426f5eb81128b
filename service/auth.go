package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/encrypt"
	"Folio/pkg/jwt"
	"Folio/pkg/log"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

const (
	maxAvatarURL  = 500
	maxSignature  = 255
	maxBio        = 2000
	maxPasswordLn = 72 // bcrypt 只取前 72 字节
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest, ip string) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest, ip string) (*types.AuthResponse, error)
	Profile(ctx context.Context, actor *types.Actor) (*types.UserInfo, error)
	UpdateProfile(ctx context.Context, actor *types.Actor, req *types.UpdateProfileRequest) (*types.UserInfo, error)
	ChangePassword(ctx context.Context, actor *types.Actor, req *types.ChangePasswordRequest) error
}

type AuthService struct {
	UserDAO *dao.UserDAO
	LogDAO  *dao.SystemLogDAO
	Issuer  jwt.Issuer
	Clock   func() time.Time `wire:"-"`
}

func validateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || len(email) > 255 {
		return "", response.InvalidInput("invalid email address")
	}
	return email, nil
}

func validateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return "", response.InvalidInput("username must be 3-30 characters of letters, digits or underscore")
	}
	return username, nil
}

// validatePassword 至少 8 位，同时包含字母和数字
func validatePassword(password string) error {
	if len(password) < 8 || len(password) > maxPasswordLn {
		return response.InvalidInput("password must be 8-72 characters")
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return response.InvalidInput("password must contain at least one letter and one digit")
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest, ip string) (*types.AuthResponse, error) {
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}
	username, err := validateUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	if exist, err := s.UserDAO.IsEmailExist(ctx, email); err != nil {
		return nil, err
	} else if exist {
		return nil, userExists()
	}
	if taken, err := s.UserDAO.IsUsernameTaken(ctx, username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, userExists()
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Status:       models.UserStatusActive,
		Privacy:      datatypes.NewJSONType(models.DefaultPrivacy()),
	}
	err = s.UserDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if dao.IsDuplicateKey(err) {
				return userExists()
			}
			return err
		}
		return s.LogDAO.Append(tx, &models.SystemLog{
			UserID:     &user.ID,
			Action:     models.ActionUserRegister,
			TargetType: string(KindUser),
			TargetID:   user.ID,
			IPAddress:  ip,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Login 账号不存在与密码错误返回同一个错误码
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest, ip string) (*types.AuthResponse, error) {
	account := strings.TrimSpace(req.Account())
	if account == "" {
		return nil, response.InvalidInput("identifier is required")
	}
	// 邮箱统一按小写存储
	if strings.Contains(account, "@") {
		account = strings.ToLower(account)
	}
	user, err := s.UserDAO.FindByIdentifier(ctx, account)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, invalidCredentials()
	}
	if user.IsBanned() {
		return nil, response.Forbidden(response.CodeAccountBanned, "account is banned")
	}

	now := nowOr(s.Clock)
	if err := s.UserDAO.TouchLogin(ctx, user.ID, now); err != nil {
		log.L.Warn("update last login failed", zap.Uint64("user_id", user.ID), zap.Error(err))
	}
	user.LastLoginAt = &now
	if err := s.LogDAO.Record(ctx, &models.SystemLog{
		UserID:     &user.ID,
		Action:     models.ActionUserLogin,
		TargetType: string(KindUser),
		TargetID:   user.ID,
		IPAddress:  ip,
	}); err != nil {
		log.L.Warn("write login log failed", zap.Uint64("user_id", user.ID), zap.Error(err))
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*types.AuthResponse, error) {
	token, expiresAt, err := s.Issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{Token: token, ExpiresAt: expiresAt, User: types.NewUserInfo(user)}, nil
}

func (s *AuthService) Profile(ctx context.Context, actor *types.Actor) (*types.UserInfo, error) {
	if err := CanPerform(actor, ActionUpdate, UserResource(actor.IDOrZero())).Err(); err != nil {
		return nil, err
	}
	user, err := s.UserDAO.FindById(ctx, actor.ID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return types.NewUserInfo(user), nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, actor *types.Actor, req *types.UpdateProfileRequest) (*types.UserInfo, error) {
	if err := CanPerform(actor, ActionUpdate, UserResource(actor.IDOrZero())).Err(); err != nil {
		return nil, err
	}
	user, err := s.UserDAO.FindById(ctx, actor.ID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]any)
	if req.Username != nil {
		username, err := validateUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if username != user.Username {
			taken, err := s.UserDAO.IsUsernameTaken(ctx, username, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, userExists()
			}
			updates["username"] = username
		}
	}
	if req.AvatarURL != nil {
		if updates["avatar_url"], err = cleanText("avatar_url", *req.AvatarURL, 0, maxAvatarURL); err != nil {
			return nil, err
		}
	}
	if req.Signature != nil {
		if updates["signature"], err = cleanText("signature", *req.Signature, 0, maxSignature); err != nil {
			return nil, err
		}
	}
	if req.Bio != nil {
		if updates["bio"], err = cleanText("bio", *req.Bio, 0, maxBio); err != nil {
			return nil, err
		}
	}
	if req.Privacy != nil {
		updates["privacy"] = datatypes.NewJSONType(mergePrivacy(user.Privacy.Data(), req.Privacy))
	}

	if err := s.UserDAO.Update(ctx, user.ID, updates); err != nil {
		if dao.IsDuplicateKey(err) {
			return nil, userExists()
		}
		return nil, err
	}
	return s.Profile(ctx, actor)
}

func mergePrivacy(p models.PrivacySettings, patch *types.PrivacyPatch) models.PrivacySettings {
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.Signature != nil {
		p.Signature = *patch.Signature
	}
	if patch.Stats != nil {
		p.Stats = *patch.Stats
	}
	if patch.History != nil {
		p.History = *patch.History
	}
	return p
}

func (s *AuthService) ChangePassword(ctx context.Context, actor *types.Actor, req *types.ChangePasswordRequest) error {
	if err := CanPerform(actor, ActionUpdate, UserResource(actor.IDOrZero())).Err(); err != nil {
		return err
	}
	user, err := s.UserDAO.FindById(ctx, actor.ID)
	if err != nil {
		if dao.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if !encrypt.VerifyPassword(user.PasswordHash, req.OldPassword) {
		return response.Validation(response.CodeInvalidCredentials, "current password is incorrect")
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}
	hash, err := encrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.UserDAO.Update(ctx, user.ID, map[string]any{"password_hash": hash})
}

func userExists() error {
	return response.Conflict(response.CodeUserExists, "email or username already registered")
}

func invalidCredentials() error {
	return response.Unauthenticated(response.CodeInvalidCredentials, "invalid email/username or password")
}
