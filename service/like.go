package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.LikeStatus, error)
	Unlike(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.LikeStatus, error)
	Status(ctx context.Context, reviewID uint64, actor *types.Actor) (*types.LikeStatus, error)
	BatchStatus(ctx context.Context, reviewIDs []uint64, actor *types.Actor) (map[uint64]types.LikeStatus, error)
	ListLiked(ctx context.Context, actor *types.Actor, page types.PageQuery) (*response.PageData[*models.Review], error)
}

type LikeService struct {
	ReviewDAO *dao.ReviewDAO
	LikeDAO   *dao.LikeDAO
	Counter   *CounterService
}

func (s *LikeService) Like(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.LikeStatus, error) {
	if actor == nil {
		return nil, CanPerform(nil, ActionCreate, Resource{Kind: KindReview}).Err()
	}
	review, err := s.ReviewDAO.FindApproved(ctx, reviewID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID == actor.ID {
		return nil, response.Validation(response.CodeSelfLikeForbidden, "cannot like your own review")
	}

	// 预检查只为了给出友好的错误，真正的保证是唯一索引
	liked, err := s.LikeDAO.IsLiked(ctx, actor.ID, reviewID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, alreadyLiked()
	}

	var count int64
	err = s.LikeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.LikeDAO.Insert(tx, actor.ID, reviewID); err != nil {
			if dao.IsDuplicateKey(err) {
				return alreadyLiked()
			}
			return err
		}
		if err := s.Counter.AfterLike(tx, reviewID, review.UserID); err != nil {
			return err
		}
		fresh, err := s.ReviewDAO.Reload(tx, reviewID)
		if err != nil {
			return err
		}
		count = fresh.LikesCount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.LikeStatus{LikesCount: count, IsLiked: true}, nil
}

func (s *LikeService) Unlike(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.LikeStatus, error) {
	if actor == nil {
		return nil, CanPerform(nil, ActionDelete, Resource{Kind: KindReview}).Err()
	}
	// 书评被隐藏后仍允许取消点赞
	review, err := s.ReviewDAO.FindById(ctx, reviewID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	var count int64
	err = s.LikeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		removed, err := s.LikeDAO.Remove(tx, actor.ID, reviewID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return response.NotFound(response.CodeNotLiked, "review not liked")
		}
		if err := s.Counter.AfterLike(tx, reviewID, review.UserID); err != nil {
			return err
		}
		fresh, err := s.ReviewDAO.Reload(tx, reviewID)
		if err != nil {
			return err
		}
		count = fresh.LikesCount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.LikeStatus{LikesCount: count, IsLiked: false}, nil
}

// Status 匿名用户 is_liked 恒为 false
func (s *LikeService) Status(ctx context.Context, reviewID uint64, actor *types.Actor) (*types.LikeStatus, error) {
	review, err := s.ReviewDAO.FindApproved(ctx, reviewID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	status := &types.LikeStatus{LikesCount: review.LikesCount}
	if actor != nil {
		if status.IsLiked, err = s.LikeDAO.IsLiked(ctx, actor.ID, reviewID); err != nil {
			return nil, err
		}
	}
	return status, nil
}

// BatchStatus 未知或未通过审核的 id 返回 {0, false}
func (s *LikeService) BatchStatus(ctx context.Context, reviewIDs []uint64, actor *types.Actor) (map[uint64]types.LikeStatus, error) {
	if len(reviewIDs) == 0 || len(reviewIDs) > types.MaxBatchReviewIDs {
		return nil, response.InvalidInput("review_ids must contain 1-50 ids")
	}
	ids := uniqueIDs(reviewIDs)

	counts, err := s.ReviewDAO.LikesCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeDAO.LikedSet(ctx, actor.IDOrZero(), ids)
	if err != nil {
		return nil, err
	}

	result := make(map[uint64]types.LikeStatus, len(ids))
	for _, id := range ids {
		count, known := counts[id]
		result[id] = types.LikeStatus{LikesCount: count, IsLiked: known && liked[id]}
	}
	return result, nil
}

func (s *LikeService) ListLiked(ctx context.Context, actor *types.Actor, page types.PageQuery) (*response.PageData[*models.Review], error) {
	p := toPage(&page)
	items, total, err := s.LikeDAO.ListLikedReviews(ctx, actor.ID, p)
	if err != nil {
		return nil, err
	}
	return response.NewPage(items, page.Page, page.Limit, total), nil
}

func alreadyLiked() error {
	return response.Conflict(response.CodeAlreadyLiked, "review already liked")
}
