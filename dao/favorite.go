package dao

import (
	"Folio/models"
	"Folio/types"
	"context"

	"gorm.io/gorm"
)

type FavoriteDAO struct {
	Repo[models.UserFavorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{Repo: NewRepo[models.UserFavorite](db)}
}

func (d *FavoriteDAO) IsFavorited(ctx context.Context, userID, reviewID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND review_id = ?", userID, reviewID)
}

func (d *FavoriteDAO) CountByReview(ctx context.Context, reviewID uint64) (int64, error) {
	return d.FindCount(ctx, "review_id = ?", reviewID)
}

func (d *FavoriteDAO) CountByReviewTx(tx *gorm.DB, reviewID uint64) (int64, error) {
	var count int64
	err := tx.Model(&models.UserFavorite{}).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}

func (d *FavoriteDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return d.FindCount(ctx, "user_id = ?", userID)
}

func (d *FavoriteDAO) Insert(tx *gorm.DB, userID, reviewID uint64) error {
	return tx.Create(&models.UserFavorite{UserID: userID, ReviewID: reviewID}).Error
}

func (d *FavoriteDAO) Remove(tx *gorm.DB, userID, reviewID uint64) (int64, error) {
	result := tx.Where("user_id = ? AND review_id = ?", userID, reviewID).Delete(&models.UserFavorite{})
	return result.RowsAffected, result.Error
}

func (d *FavoriteDAO) ListFavoriteReviews(ctx context.Context, userID uint64, page Page) ([]*models.Review, int64, error) {
	query := d.Db.WithContext(ctx).
		Model(&models.Review{}).
		Joins("JOIN user_favorites ON user_favorites.review_id = reviews.id").
		Where("user_favorites.user_id = ? AND reviews.status = ?", userID, models.ReviewStatusApproved)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*models.Review, 0, page.Limit)
	err := query.Select("reviews.*").
		Order("user_favorites.created_at DESC, user_favorites.id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&items).Error
	return items, total, err
}

// TopReviews 实时统计，不做缓存
func (d *FavoriteDAO) TopReviews(ctx context.Context, limit int) ([]types.ReviewFavoriteCount, error) {
	rows := make([]types.ReviewFavoriteCount, 0, limit)
	err := d.Db.WithContext(ctx).
		Table("user_favorites").
		Select("reviews.id AS review_id, reviews.title, reviews.book_id, reviews.user_id, COUNT(*) AS favorites_count").
		Joins("JOIN reviews ON reviews.id = user_favorites.review_id").
		Where("reviews.status = ?", models.ReviewStatusApproved).
		Group("reviews.id, reviews.title, reviews.book_id, reviews.user_id").
		Order("favorites_count DESC, reviews.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (d *FavoriteDAO) TopUsers(ctx context.Context, limit int) ([]types.UserFavoriteCount, error) {
	rows := make([]types.UserFavoriteCount, 0, limit)
	err := d.Db.WithContext(ctx).
		Table("user_favorites").
		Select("users.id AS user_id, users.username, COUNT(*) AS favorites_count").
		Joins("JOIN users ON users.id = user_favorites.user_id").
		Group("users.id, users.username").
		Order("favorites_count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
