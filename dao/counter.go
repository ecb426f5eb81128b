package dao

import (
	"Folio/models"

	"gorm.io/gorm"
)

// CounterDAO 所有冗余计数的重算语句
// 每条语句都从明细表重新统计，而不是在旧值上加减
type CounterDAO struct {
	Db *gorm.DB
}

func NewCounterDAO(db *gorm.DB) *CounterDAO {
	return &CounterDAO{Db: db}
}

func (d *CounterDAO) ReviewLikes(tx *gorm.DB, reviewID uint64) error {
	return tx.Exec(
		"UPDATE reviews SET likes_count = (SELECT COUNT(*) FROM review_likes WHERE review_id = ?) WHERE id = ?",
		reviewID, reviewID,
	).Error
}

// ReviewComments 回复与一级评论同样计数
func (d *CounterDAO) ReviewComments(tx *gorm.DB, reviewID uint64) error {
	return tx.Exec(
		"UPDATE reviews SET comments_count = (SELECT COUNT(*) FROM review_comments WHERE review_id = ?) WHERE id = ?",
		reviewID, reviewID,
	).Error
}

// Book 只统计 approved 书评，没有书评时平均分为 0
func (d *CounterDAO) Book(tx *gorm.DB, bookID uint64) error {
	return tx.Exec(
		"UPDATE books SET "+
			"total_reviews = (SELECT COUNT(*) FROM reviews WHERE book_id = ? AND status = ?), "+
			"average_rating = (SELECT COALESCE(ROUND(AVG(rating), 2), 0) FROM reviews WHERE book_id = ? AND status = ?) "+
			"WHERE id = ?",
		bookID, models.ReviewStatusApproved, bookID, models.ReviewStatusApproved, bookID,
	).Error
}

func (d *CounterDAO) UserReviews(tx *gorm.DB, userID uint64) error {
	return tx.Exec(
		"UPDATE users SET total_reviews = (SELECT COUNT(*) FROM reviews WHERE user_id = ? AND status = ?) WHERE id = ?",
		userID, models.ReviewStatusApproved, userID,
	).Error
}

func (d *CounterDAO) UserLikesReceived(tx *gorm.DB, userID uint64) error {
	return tx.Exec(
		"UPDATE users SET total_likes_received = ("+
			"SELECT COUNT(*) FROM review_likes JOIN reviews ON reviews.id = review_likes.review_id WHERE reviews.user_id = ?"+
			") WHERE id = ?",
		userID, userID,
	).Error
}

func (d *CounterDAO) TagUsage(tx *gorm.DB, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return tx.Exec(
		"UPDATE tags SET usage_count = (SELECT COUNT(*) FROM book_tags WHERE book_tags.tag_id = tags.id) WHERE id IN ?",
		tagIDs,
	).Error
}
