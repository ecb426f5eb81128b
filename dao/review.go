package dao

import (
	"Folio/models"
	"context"

	"gorm.io/gorm"
)

const (
	ReviewSortNewest = "newest"
	ReviewSortRating = "rating"
	ReviewSortLikes  = "likes"
	ReviewSortViews  = "views"
)

var reviewOrders = map[string]string{
	ReviewSortNewest: "created_at DESC, id DESC",
	ReviewSortRating: "rating DESC, id DESC",
	ReviewSortLikes:  "likes_count DESC, id DESC",
	ReviewSortViews:  "views DESC, id DESC",
}

// ReviewFilter 公开列表只返回 approved
type ReviewFilter struct {
	BookID   uint64
	UserID   uint64
	Featured bool
	Sort     string
}

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// ExistsForUserBook 不区分状态，hidden 的书评同样占用 (user, book)
func (d *ReviewDAO) ExistsForUserBook(ctx context.Context, userID, bookID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND book_id = ?", userID, bookID)
}

// FindApproved 不存在或未通过审核都返回 gorm.ErrRecordNotFound
func (d *ReviewDAO) FindApproved(ctx context.Context, id uint64) (*models.Review, error) {
	return d.FindByWhere(ctx, "id = ? AND status = ?", id, models.ReviewStatusApproved)
}

func (d *ReviewDAO) List(ctx context.Context, f ReviewFilter, page Page) ([]*models.Review, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Review{}).Where("status = ?", models.ReviewStatusApproved)
	if f.BookID > 0 {
		query = query.Where("book_id = ?", f.BookID)
	}
	if f.UserID > 0 {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.Featured {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := reviewOrders[f.Sort]
	if !ok {
		order = reviewOrders[ReviewSortNewest]
	}
	items := make([]*models.Review, 0, page.Limit)
	err := query.Order(order).Offset(page.Offset).Limit(page.Limit).Find(&items).Error
	return items, total, err
}

// RecentByUser 个人主页历史记录
func (d *ReviewDAO) RecentByUser(ctx context.Context, userID uint64, limit int) ([]*models.Review, error) {
	items := make([]*models.Review, 0, limit)
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.ReviewStatusApproved).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// LikesCounts 批量查询 likes_count，只包含 approved 的书评
func (d *ReviewDAO) LikesCounts(ctx context.Context, ids []uint64) (map[uint64]int64, error) {
	var rows []struct {
		ID         uint64
		LikesCount int64
	}
	err := d.Db.WithContext(ctx).
		Model(&models.Review{}).
		Select("id, likes_count").
		Where("id IN ? AND status = ?", ids, models.ReviewStatusApproved).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	m := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		m[r.ID] = r.LikesCount
	}
	return m, nil
}

func (d *ReviewDAO) Insert(tx *gorm.DB, review *models.Review) error {
	return tx.Create(review).Error
}

func (d *ReviewDAO) UpdateFields(tx *gorm.DB, id uint64, updates map[string]any) error {
	return tx.Model(&models.Review{}).Where("id = ?", id).Updates(updates).Error
}

func (d *ReviewDAO) IncrViews(tx *gorm.DB, id uint64) error {
	return tx.Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (d *ReviewDAO) GetViews(tx *gorm.DB, id uint64) (int64, error) {
	var views int64
	err := tx.Model(&models.Review{}).Where("id = ?", id).Pluck("views", &views).Error
	return views, err
}

// ReviewRef 级联删除时需要的最小信息
type ReviewRef struct {
	ID     uint64
	UserID uint64
	BookID uint64
}

func (d *ReviewDAO) RefsByBook(tx *gorm.DB, bookID uint64) ([]ReviewRef, error) {
	var refs []ReviewRef
	err := tx.Model(&models.Review{}).
		Select("id, user_id, book_id").
		Where("book_id = ?", bookID).
		Scan(&refs).Error
	return refs, err
}

// Purge 物理删除书评及其点赞、收藏、评论
func (d *ReviewDAO) Purge(tx *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	// 先删回复再删一级评论，避免自引用外键阻塞
	if err := tx.Where("review_id IN ? AND parent_id IS NOT NULL", ids).Delete(&models.ReviewComment{}).Error; err != nil {
		return err
	}
	for _, model := range []any{&models.ReviewComment{}, &models.ReviewLike{}, &models.UserFavorite{}} {
		if err := tx.Where("review_id IN ?", ids).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", ids).Delete(&models.Review{}).Error
}

// Reload 事务内重新读取，拿到重算后的计数
func (d *ReviewDAO) Reload(tx *gorm.DB, id uint64) (*models.Review, error) {
	var review models.Review
	if err := tx.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}
