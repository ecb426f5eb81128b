package dao

import (
	"Folio/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// Ensure 按名称查找或创建标签，返回对应 id（与入参顺序一致）
func (d *TagDAO) Ensure(tx *gorm.DB, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	rows := make([]models.Tag, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.Tag{Name: name})
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := tx.Where("name IN ?", names).Find(&tags).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]uint64, len(tags))
	for _, t := range tags {
		byName[t.Name] = t.ID
	}
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Popular 按使用次数倒序
func (d *TagDAO) Popular(ctx context.Context, limit int) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, limit)
	err := d.Db.WithContext(ctx).
		Where("usage_count > 0").
		Order("usage_count DESC, name ASC").
		Limit(limit).
		Find(&tags).Error
	return tags, err
}
