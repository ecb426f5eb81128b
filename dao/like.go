package dao

import (
	"Folio/models"
	"context"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.ReviewLike]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.ReviewLike](db)}
}

// IsLiked 行存在即已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, userID, reviewID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND review_id = ?", userID, reviewID)
}

// LikedSet 批量判断当前用户是否点赞
func (d *LikeDAO) LikedSet(ctx context.Context, userID uint64, reviewIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(reviewIDs))
	if userID == 0 || len(reviewIDs) == 0 {
		return result, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.ReviewLike{}).
		Where("user_id = ? AND review_id IN ?", userID, reviewIDs).
		Pluck("review_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

func (d *LikeDAO) Insert(tx *gorm.DB, userID, reviewID uint64) error {
	return tx.Create(&models.ReviewLike{UserID: userID, ReviewID: reviewID}).Error
}

// Remove 返回删除的行数，0 表示原本未点赞
func (d *LikeDAO) Remove(tx *gorm.DB, userID, reviewID uint64) (int64, error) {
	result := tx.Where("user_id = ? AND review_id = ?", userID, reviewID).Delete(&models.ReviewLike{})
	return result.RowsAffected, result.Error
}

// ListLikedReviews 用户点赞过的书评，按点赞时间倒序
func (d *LikeDAO) ListLikedReviews(ctx context.Context, userID uint64, page Page) ([]*models.Review, int64, error) {
	query := d.Db.WithContext(ctx).
		Model(&models.Review{}).
		Joins("JOIN review_likes ON review_likes.review_id = reviews.id").
		Where("review_likes.user_id = ? AND reviews.status = ?", userID, models.ReviewStatusApproved)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*models.Review, 0, page.Limit)
	err := query.Select("reviews.*").
		Order("review_likes.created_at DESC, review_likes.id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&items).Error
	return items, total, err
}
