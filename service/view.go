package service

import (
	"Folio/config"
	"Folio/dao"
	"Folio/models"
	"Folio/types"
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
)

var _ IViewService = (*ViewService)(nil)

type IViewService interface {
	RecordView(ctx context.Context, reviewID uint64, actor *types.Actor, ip string) (*types.ViewResult, error)
}

// ViewService 浏览量去重：同一用户（或匿名 IP）在窗口期内只计一次
// 读日志与写入之间存在竞态，属于可接受的误差
type ViewService struct {
	Config    *config.Config
	ReviewDAO *dao.ReviewDAO
	LogDAO    *dao.SystemLogDAO
	Clock     func() time.Time `wire:"-"`
}

// ViewerKey 登录用户按 id，匿名按 IP
func ViewerKey(actor *types.Actor, ip string) string {
	if actor != nil {
		return "user:" + strconv.FormatUint(actor.ID, 10)
	}
	return "ip:" + ip
}

func (s *ViewService) RecordView(ctx context.Context, reviewID uint64, actor *types.Actor, ip string) (*types.ViewResult, error) {
	review, err := s.ReviewDAO.FindApproved(ctx, reviewID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	now := nowOr(s.Clock)
	key := ViewerKey(actor, ip)
	seen, err := s.LogDAO.HasRecent(ctx, models.ActionReviewView, key, reviewID, now.Add(-s.Config.Engagement.ViewWindow))
	if err != nil {
		return nil, err
	}
	if seen {
		return &types.ViewResult{Views: review.Views, Counted: false}, nil
	}

	var views int64
	err = s.ReviewDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ReviewDAO.IncrViews(tx, reviewID); err != nil {
			return err
		}
		entry := &models.SystemLog{
			Action:     models.ActionReviewView,
			TargetType: string(KindReview),
			TargetID:   reviewID,
			Actor:      key,
			IPAddress:  ip,
			CreatedAt:  now,
		}
		if actor != nil {
			entry.UserID = &actor.ID
		}
		if err := s.LogDAO.Append(tx, entry); err != nil {
			return err
		}
		views, err = s.ReviewDAO.GetViews(tx, reviewID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.ViewResult{Views: views, Counted: true}, nil
}
