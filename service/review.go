package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	maxReviewTitle   = 200
	maxReviewContent = 10000
)

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	Create(ctx context.Context, actor *types.Actor, req *types.CreateReviewRequest) (*models.Review, error)
	Get(ctx context.Context, id uint64, actor *types.Actor) (*types.ReviewDetail, error)
	List(ctx context.Context, req *types.ReviewListRequest) (*response.PageData[*models.Review], error)
	Update(ctx context.Context, actor *types.Actor, id uint64, req *types.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, actor *types.Actor, id uint64) error
	Moderate(ctx context.Context, actor *types.Actor, id uint64, status string) (*models.Review, error)
	Feature(ctx context.Context, actor *types.Actor, id uint64, featured bool) (*models.Review, error)
	Purge(ctx context.Context, actor *types.Actor, id uint64) error
}

type ReviewService struct {
	BookDAO     *dao.BookDAO
	ReviewDAO   *dao.ReviewDAO
	UserDAO     *dao.UserDAO
	LikeDAO     *dao.LikeDAO
	FavoriteDAO *dao.FavoriteDAO
	LogDAO      *dao.SystemLogDAO
	Counter     *CounterService
}

func validRating(r int) error {
	if r < 1 || r > 5 {
		return response.InvalidInput("rating must be an integer between 1 and 5")
	}
	return nil
}

// Create 每个用户每本书只能有一篇书评，隐藏的书评同样占用名额
func (s *ReviewService) Create(ctx context.Context, actor *types.Actor, req *types.CreateReviewRequest) (*models.Review, error) {
	if err := CanPerform(actor, ActionCreate, Resource{Kind: KindReview}).Err(); err != nil {
		return nil, err
	}
	if err := validRating(req.Rating); err != nil {
		return nil, err
	}
	title, err := cleanText("title", req.Title, 1, maxReviewTitle)
	if err != nil {
		return nil, err
	}
	content, err := cleanText("content", req.Content, 1, maxReviewContent)
	if err != nil {
		return nil, err
	}

	if _, err := s.BookDAO.FindById(ctx, req.BookID); err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	exist, err := s.ReviewDAO.ExistsForUserBook(ctx, actor.ID, req.BookID)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, reviewExists()
	}

	review := &models.Review{
		UserID:  actor.ID,
		BookID:  req.BookID,
		Title:   title,
		Content: content,
		Rating:  req.Rating,
		Status:  models.ReviewStatusApproved,
	}
	err = s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ReviewDAO.Insert(tx, review); err != nil {
			if dao.IsDuplicateKey(err) {
				return reviewExists()
			}
			return err
		}
		return s.Counter.AfterReview(tx, review.BookID, review.UserID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Get 未通过审核的书评对无权限者表现为不存在
func (s *ReviewService) Get(ctx context.Context, id uint64, actor *types.Actor) (*types.ReviewDetail, error) {
	review, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanPerform(actor, ActionRead, ReviewResource(review)).Allowed {
		return nil, ErrReviewNotFound
	}

	detail := &types.ReviewDetail{Review: review}
	if author, err := s.UserDAO.FindById(ctx, review.UserID); err == nil {
		detail.Author = types.NewUserBrief(author)
	}
	if book, err := s.BookDAO.FindById(ctx, review.BookID); err == nil {
		detail.Book = &types.BookBrief{ID: book.ID, Title: book.Title, Author: book.Author}
	}
	if actor != nil {
		if detail.IsLiked, err = s.LikeDAO.IsLiked(ctx, actor.ID, id); err != nil {
			return nil, err
		}
		if detail.IsFavorited, err = s.FavoriteDAO.IsFavorited(ctx, actor.ID, id); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *ReviewService) List(ctx context.Context, req *types.ReviewListRequest) (*response.PageData[*models.Review], error) {
	p := toPage(&req.PageQuery)
	items, total, err := s.ReviewDAO.List(ctx, dao.ReviewFilter{
		BookID:   req.BookID,
		UserID:   req.UserID,
		Featured: req.Featured,
		Sort:     req.Sort,
	}, p)
	if err != nil {
		return nil, err
	}
	return response.NewPage(items, req.Page, req.Limit, total), nil
}

func (s *ReviewService) Update(ctx context.Context, actor *types.Actor, id uint64, req *types.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanPerform(actor, ActionUpdate, ReviewResource(review)).Err(); err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if req.Title != nil {
		title, err := cleanText("title", *req.Title, 1, maxReviewTitle)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
		review.Title = title
	}
	if req.Content != nil {
		content, err := cleanText("content", *req.Content, 1, maxReviewContent)
		if err != nil {
			return nil, err
		}
		updates["content"] = content
		review.Content = content
	}
	ratingChanged := false
	if req.Rating != nil {
		if err := validRating(*req.Rating); err != nil {
			return nil, err
		}
		ratingChanged = *req.Rating != review.Rating
		updates["rating"] = *req.Rating
		review.Rating = *req.Rating
	}
	if len(updates) == 0 {
		return review, nil
	}

	err = s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ReviewDAO.UpdateFields(tx, id, updates); err != nil {
			return err
		}
		if ratingChanged {
			return s.Counter.AfterReview(tx, review.BookID, review.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

// Delete 作者或管理员删除，软删除为 hidden
func (s *ReviewService) Delete(ctx context.Context, actor *types.Actor, id uint64) error {
	review, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := CanPerform(actor, ActionDelete, ReviewResource(review)).Err(); err != nil {
		return err
	}
	return s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		return s.applyDelete(tx, review, models.ReviewDeletePolicy)
	})
}

// Purge 管理员物理删除，连同点赞、收藏、评论
func (s *ReviewService) Purge(ctx context.Context, actor *types.Actor, id uint64) error {
	if err := CanPerform(actor, ActionModerate, Resource{Kind: KindReview}).Err(); err != nil {
		return err
	}
	review, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.applyDelete(tx, review, models.ReviewPurgePolicy); err != nil {
			return err
		}
		return s.LogDAO.Append(tx, &models.SystemLog{
			UserID:     &actor.ID,
			Action:     models.ActionReviewPurge,
			TargetType: string(KindReview),
			TargetID:   review.ID,
			Detail:     fmt.Sprintf("book=%d author=%d", review.BookID, review.UserID),
		})
	})
}

func (s *ReviewService) applyDelete(tx *gorm.DB, review *models.Review, policy models.DeletePolicy) error {
	switch p := policy.(type) {
	case models.SoftDelete:
		if err := s.ReviewDAO.UpdateFields(tx, review.ID, map[string]any{"status": p.Status}); err != nil {
			return err
		}
		return s.Counter.AfterReview(tx, review.BookID, review.UserID)
	case models.HardDelete:
		if err := s.ReviewDAO.Purge(tx, []uint64{review.ID}); err != nil {
			return err
		}
		return s.Counter.AfterReviewPurge(tx, review.BookID, []uint64{review.UserID})
	default:
		return fmt.Errorf("unknown delete policy %T", policy)
	}
}

// Moderate 状态变化会影响书籍评分和作者书评数
func (s *ReviewService) Moderate(ctx context.Context, actor *types.Actor, id uint64, status string) (*models.Review, error) {
	if err := CanPerform(actor, ActionModerate, Resource{Kind: KindReview}).Err(); err != nil {
		return nil, err
	}
	if !models.ValidReviewStatus(status) {
		return nil, response.InvalidInput("status must be one of pending, approved, rejected, hidden")
	}
	review, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ReviewDAO.UpdateFields(tx, id, map[string]any{"status": status}); err != nil {
			return err
		}
		if err := s.Counter.AfterReview(tx, review.BookID, review.UserID); err != nil {
			return err
		}
		return s.LogDAO.Append(tx, &models.SystemLog{
			UserID:     &actor.ID,
			Action:     models.ActionReviewStatus,
			TargetType: string(KindReview),
			TargetID:   id,
			Detail:     review.Status + " -> " + status,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

func (s *ReviewService) Feature(ctx context.Context, actor *types.Actor, id uint64, featured bool) (*models.Review, error) {
	if err := CanPerform(actor, ActionModerate, Resource{Kind: KindReview}).Err(); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	err := s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		return s.ReviewDAO.UpdateFields(tx, id, map[string]any{"is_featured": featured})
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

func (s *ReviewService) load(ctx context.Context, id uint64) (*models.Review, error) {
	review, err := s.ReviewDAO.FindById(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func reviewExists() error {
	return response.Conflict(response.CodeReviewExists, "you have already reviewed this book")
}
