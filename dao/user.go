package dao

import (
	"Folio/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByIdentifier 邮箱或用户名登录
func (d *UserDAO) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return d.FindByWhere(ctx, "email = ? OR username = ?", identifier, identifier)
}

func (d *UserDAO) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return d.IsExist(ctx, "email = ?", email)
}

// IsUsernameTaken excludeID 用于修改资料时排除自己
func (d *UserDAO) IsUsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error) {
	return d.IsExist(ctx, "username = ? AND id <> ?", username, excludeID)
}

func (d *UserDAO) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("dao.User.Update error: %w", err)
	}
	return nil
}

func (d *UserDAO) TouchLogin(ctx context.Context, userID uint64, at time.Time) error {
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("last_login_at", at).Error
}

// MapByIds 批量查询用户，返回 id -> user
func (d *UserDAO) MapByIds(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	users, err := d.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m, nil
}
