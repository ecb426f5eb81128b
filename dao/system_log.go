package dao

import (
	"Folio/models"
	"Folio/pkg/snowflake"
	"context"
	"time"

	"gorm.io/gorm"
)

// LogFilter 后台日志查询条件
type LogFilter struct {
	Action string
	UserID uint64
}

type SystemLogDAO struct {
	Repo[models.SystemLog]
}

func NewSystemLogDAO(db *gorm.DB) *SystemLogDAO {
	return &SystemLogDAO{Repo: NewRepo[models.SystemLog](db)}
}

// Append 写入一条日志，tx 可以是事务也可以是普通连接
func (d *SystemLogDAO) Append(tx *gorm.DB, entry *models.SystemLog) error {
	if entry.ID == 0 {
		entry.ID = snowflake.GenID()
	}
	return tx.Create(entry).Error
}

func (d *SystemLogDAO) Record(ctx context.Context, entry *models.SystemLog) error {
	return d.Append(d.Db.WithContext(ctx), entry)
}

// HasRecent 窗口期内是否已有同一 actor 对同一目标的同类行为
func (d *SystemLogDAO) HasRecent(ctx context.Context, action, actor string, targetID uint64, since time.Time) (bool, error) {
	return d.IsExist(ctx,
		"action = ? AND target_id = ? AND actor = ? AND created_at > ?",
		action, targetID, actor, since,
	)
}

func (d *SystemLogDAO) List(ctx context.Context, f LogFilter, page Page) ([]*models.SystemLog, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.SystemLog{})
	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}
	if f.UserID > 0 {
		query = query.Where("user_id = ?", f.UserID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*models.SystemLog, 0, page.Limit)
	err := query.Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&items).Error
	return items, total, err
}
