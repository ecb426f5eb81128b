package service

import (
	"Folio/dao"
	"fmt"

	"gorm.io/gorm"
)

// CounterService 冗余计数只在这里维护
// 所有方法都必须在触发写入的同一个事务里调用，失败即整体回滚
type CounterService struct {
	CounterDAO *dao.CounterDAO
}

// AfterLike 点赞/取消点赞后重算书评点赞数和作者获赞数
func (s *CounterService) AfterLike(tx *gorm.DB, reviewID, authorID uint64) error {
	if err := s.CounterDAO.ReviewLikes(tx, reviewID); err != nil {
		return fmt.Errorf("recount review %d likes: %w", reviewID, err)
	}
	if err := s.CounterDAO.UserLikesReceived(tx, authorID); err != nil {
		return fmt.Errorf("recount user %d likes received: %w", authorID, err)
	}
	return nil
}

// AfterComment 评论新增/删除后重算 comments_count
func (s *CounterService) AfterComment(tx *gorm.DB, reviewID uint64) error {
	if err := s.CounterDAO.ReviewComments(tx, reviewID); err != nil {
		return fmt.Errorf("recount review %d comments: %w", reviewID, err)
	}
	return nil
}

// AfterReview 书评新增、改分、状态变化后重算书籍评分与作者书评数
func (s *CounterService) AfterReview(tx *gorm.DB, bookID, authorID uint64) error {
	if err := s.CounterDAO.Book(tx, bookID); err != nil {
		return fmt.Errorf("recount book %d: %w", bookID, err)
	}
	if err := s.CounterDAO.UserReviews(tx, authorID); err != nil {
		return fmt.Errorf("recount user %d reviews: %w", authorID, err)
	}
	return nil
}

// AfterReviewPurge 物理删除书评后，作者的获赞数也要重算
func (s *CounterService) AfterReviewPurge(tx *gorm.DB, bookID uint64, authorIDs []uint64) error {
	if bookID > 0 {
		if err := s.CounterDAO.Book(tx, bookID); err != nil {
			return fmt.Errorf("recount book %d: %w", bookID, err)
		}
	}
	for _, uid := range authorIDs {
		if err := s.CounterDAO.UserReviews(tx, uid); err != nil {
			return fmt.Errorf("recount user %d reviews: %w", uid, err)
		}
		if err := s.CounterDAO.UserLikesReceived(tx, uid); err != nil {
			return fmt.Errorf("recount user %d likes received: %w", uid, err)
		}
	}
	return nil
}

func (s *CounterService) AfterTags(tx *gorm.DB, tagIDs []uint64) error {
	if err := s.CounterDAO.TagUsage(tx, tagIDs); err != nil {
		return fmt.Errorf("recount tag usage: %w", err)
	}
	return nil
}
