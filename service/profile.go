package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/types"
	"context"

	"github.com/sourcegraph/conc/pool"
)

const historyLimit = 10

// ResolveVisibility 本人可见全部，其他人按隐私开关
// stats 和 history 各自作为整体控制
func ResolveVisibility(p models.PrivacySettings, isOwner bool) types.Visibility {
	if isOwner {
		return types.Visibility{Avatar: true, Signature: true, Stats: true, History: true}
	}
	return types.Visibility{
		Avatar:    p.Avatar,
		Signature: p.Signature,
		Stats:     p.Stats,
		History:   p.History,
	}
}

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	Public(ctx context.Context, targetID uint64, viewer *types.Actor) (*types.PublicProfile, error)
}

type ProfileService struct {
	UserDAO     *dao.UserDAO
	ReviewDAO   *dao.ReviewDAO
	FavoriteDAO *dao.FavoriteDAO
	CommentDAO  *dao.CommentDAO
}

// Public 被封禁用户的主页只对管理员可见
func (s *ProfileService) Public(ctx context.Context, targetID uint64, viewer *types.Actor) (*types.PublicProfile, error) {
	user, err := s.UserDAO.FindById(ctx, targetID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.IsBanned() && !viewer.IsAdmin() {
		return nil, ErrUserNotFound
	}

	isOwner := viewer != nil && viewer.ID == user.ID
	vis := ResolveVisibility(user.Privacy.Data(), isOwner)
	profile := &types.PublicProfile{
		ID:         user.ID,
		Username:   user.Username,
		Role:       user.Role,
		Bio:        user.Bio,
		CreatedAt:  user.CreatedAt,
		IsOwner:    isOwner,
		Visibility: vis,
	}
	if vis.Avatar {
		profile.AvatarURL = user.AvatarURL
	}
	if vis.Signature {
		profile.Signature = user.Signature
	}
	if !vis.Stats && !vis.History {
		return profile, nil
	}

	var (
		stats   types.ProfileStats
		history types.ProfileHistory
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	if vis.Stats {
		stats.TotalReviews = user.TotalReviews
		stats.TotalLikesReceived = user.TotalLikesReceived
		p.Go(func(ctx context.Context) (err error) {
			stats.FavoritesCount, err = s.FavoriteDAO.CountByUser(ctx, user.ID)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			stats.CommentsCount, err = s.CommentDAO.CountByUser(ctx, user.ID)
			return err
		})
	}
	if vis.History {
		p.Go(func(ctx context.Context) (err error) {
			history.Reviews, err = s.ReviewDAO.RecentByUser(ctx, user.ID, historyLimit)
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			history.Favorites, _, err = s.FavoriteDAO.ListFavoriteReviews(ctx, user.ID, dao.Page{Limit: historyLimit})
			return err
		})
		p.Go(func(ctx context.Context) (err error) {
			history.Comments, err = s.CommentDAO.RecentByUser(ctx, user.ID, historyLimit)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	if vis.Stats {
		profile.Stats = &stats
	}
	if vis.History {
		profile.History = &history
	}
	return profile, nil
}
