package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"

	"gorm.io/gorm"
)

const favoriteTopN = 10

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Favorite(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.FavoriteStatus, error)
	Unfavorite(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.FavoriteStatus, error)
	Status(ctx context.Context, reviewID uint64, actor *types.Actor) (*types.FavoriteStatus, error)
	Stats(ctx context.Context) (*types.FavoriteStats, error)
	ListFavorites(ctx context.Context, actor *types.Actor, page types.PageQuery) (*response.PageData[*models.Review], error)
}

// FavoriteService 与点赞相同的开关模型，但允许收藏自己的书评
type FavoriteService struct {
	ReviewDAO   *dao.ReviewDAO
	FavoriteDAO *dao.FavoriteDAO
}

func (s *FavoriteService) Favorite(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.FavoriteStatus, error) {
	if actor == nil {
		return nil, CanPerform(nil, ActionCreate, Resource{Kind: KindReview}).Err()
	}
	if _, err := s.ReviewDAO.FindApproved(ctx, reviewID); err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	exist, err := s.FavoriteDAO.IsFavorited(ctx, actor.ID, reviewID)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, alreadyFavorited()
	}

	var count int64
	err = s.FavoriteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.FavoriteDAO.Insert(tx, actor.ID, reviewID); err != nil {
			if dao.IsDuplicateKey(err) {
				return alreadyFavorited()
			}
			return err
		}
		count, err = s.FavoriteDAO.CountByReviewTx(tx, reviewID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.FavoriteStatus{FavoritesCount: count, IsFavorited: true}, nil
}

func (s *FavoriteService) Unfavorite(ctx context.Context, actor *types.Actor, reviewID uint64) (*types.FavoriteStatus, error) {
	if actor == nil {
		return nil, CanPerform(nil, ActionDelete, Resource{Kind: KindReview}).Err()
	}

	var count int64
	err := s.FavoriteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		removed, err := s.FavoriteDAO.Remove(tx, actor.ID, reviewID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return response.NotFound(response.CodeNotFavorited, "review not favorited")
		}
		count, err = s.FavoriteDAO.CountByReviewTx(tx, reviewID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.FavoriteStatus{FavoritesCount: count, IsFavorited: false}, nil
}

func (s *FavoriteService) Status(ctx context.Context, reviewID uint64, actor *types.Actor) (*types.FavoriteStatus, error) {
	if _, err := s.ReviewDAO.FindApproved(ctx, reviewID); err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	count, err := s.FavoriteDAO.CountByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	status := &types.FavoriteStatus{FavoritesCount: count}
	if actor != nil {
		if status.IsFavorited, err = s.FavoriteDAO.IsFavorited(ctx, actor.ID, reviewID); err != nil {
			return nil, err
		}
	}
	return status, nil
}

// Stats 每次实时统计
func (s *FavoriteService) Stats(ctx context.Context) (*types.FavoriteStats, error) {
	topReviews, err := s.FavoriteDAO.TopReviews(ctx, favoriteTopN)
	if err != nil {
		return nil, err
	}
	topUsers, err := s.FavoriteDAO.TopUsers(ctx, favoriteTopN)
	if err != nil {
		return nil, err
	}
	return &types.FavoriteStats{TopReviews: topReviews, TopUsers: topUsers}, nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, actor *types.Actor, page types.PageQuery) (*response.PageData[*models.Review], error) {
	p := toPage(&page)
	items, total, err := s.FavoriteDAO.ListFavoriteReviews(ctx, actor.ID, p)
	if err != nil {
		return nil, err
	}
	return response.NewPage(items, page.Page, page.Limit, total), nil
}

func alreadyFavorited() error {
	return response.Conflict(response.CodeAlreadyFavorited, "review already favorited")
}
