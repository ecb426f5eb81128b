package dao

import (
	"Folio/models"
	"context"

	"gorm.io/gorm"
)

// CommentScope 决定列表里能看到哪些状态的评论
// All 为管理员；ViewerID > 0 时额外能看到自己未通过审核的评论
type CommentScope struct {
	All      bool
	ViewerID uint64
}

func (s CommentScope) apply(db *gorm.DB) *gorm.DB {
	if s.All {
		return db
	}
	if s.ViewerID > 0 {
		return db.Where("(status = ? OR user_id = ?)", models.CommentStatusApproved, s.ViewerID)
	}
	return db.Where("status = ?", models.CommentStatusApproved)
}

type CommentDAO struct {
	Repo[models.ReviewComment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.ReviewComment](db)}
}

func (d *CommentDAO) Insert(tx *gorm.DB, comment *models.ReviewComment) error {
	return tx.Create(comment).Error
}

func (d *CommentDAO) UpdateContent(ctx context.Context, id uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.ReviewComment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (d *CommentDAO) UpdateStatus(tx *gorm.DB, id uint64, status string) error {
	return tx.Model(&models.ReviewComment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountReplies 统计所有状态的回复
func (d *CommentDAO) CountReplies(tx *gorm.DB, parentID uint64) (int64, error) {
	var count int64
	err := tx.Model(&models.ReviewComment{}).Where("parent_id = ?", parentID).Count(&count).Error
	return count, err
}

// Remove 物理删除单条评论
func (d *CommentDAO) Remove(tx *gorm.DB, id uint64) error {
	return tx.Delete(&models.ReviewComment{}, id).Error
}

// ListTopLevel 一级评论，按时间倒序分页
func (d *CommentDAO) ListTopLevel(ctx context.Context, reviewID uint64, scope CommentScope, page Page) ([]*models.ReviewComment, int64, error) {
	query := scope.apply(d.Db.WithContext(ctx).
		Model(&models.ReviewComment{}).
		Where("review_id = ? AND parent_id IS NULL", reviewID))

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*models.ReviewComment, 0, page.Limit)
	err := query.Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&items).Error
	return items, total, err
}

// RepliesOf 一次性取出多条一级评论的全部回复，按创建时间正序
func (d *CommentDAO) RepliesOf(ctx context.Context, parentIDs []uint64, scope CommentScope) (map[uint64][]*models.ReviewComment, error) {
	result := make(map[uint64][]*models.ReviewComment, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}
	var replies []*models.ReviewComment
	err := scope.apply(d.Db.WithContext(ctx).Where("parent_id IN ?", parentIDs)).
		Order("created_at ASC, id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	for _, r := range replies {
		result[*r.ParentID] = append(result[*r.ParentID], r)
	}
	return result, nil
}

func (d *CommentDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return d.FindCount(ctx, "user_id = ? AND status = ?", userID, models.CommentStatusApproved)
}

func (d *CommentDAO) RecentByUser(ctx context.Context, userID uint64, limit int) ([]*models.ReviewComment, error) {
	items := make([]*models.ReviewComment, 0, limit)
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.CommentStatusApproved).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
