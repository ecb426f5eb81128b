package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"

	"gorm.io/gorm"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	SetUserStatus(ctx context.Context, actor *types.Actor, userID uint64, status string) (*types.UserInfo, error)
	ListLogs(ctx context.Context, actor *types.Actor, req *types.LogListRequest) (*response.PageData[*models.SystemLog], error)
}

type AdminService struct {
	UserDAO *dao.UserDAO
	LogDAO  *dao.SystemLogDAO
}

// SetUserStatus 封禁/解封，管理员不能封禁自己
func (s *AdminService) SetUserStatus(ctx context.Context, actor *types.Actor, userID uint64, status string) (*types.UserInfo, error) {
	if err := CanPerform(actor, ActionModerate, UserResource(userID)).Err(); err != nil {
		return nil, err
	}
	if status != models.UserStatusActive && status != models.UserStatusBanned {
		return nil, response.InvalidInput("status must be active or banned")
	}
	if userID == actor.ID && status == models.UserStatusBanned {
		return nil, response.InvalidInput("you cannot ban yourself")
	}
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	err = s.UserDAO.Transaction(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&models.User{}).Where("id = ?", userID).Update("status", status).Error
		if err != nil {
			return err
		}
		return s.LogDAO.Append(tx, &models.SystemLog{
			UserID:     &actor.ID,
			Action:     models.ActionUserStatus,
			TargetType: string(KindUser),
			TargetID:   userID,
			Detail:     user.Status + " -> " + status,
		})
	})
	if err != nil {
		return nil, err
	}
	user.Status = status
	return types.NewUserInfo(user), nil
}

func (s *AdminService) ListLogs(ctx context.Context, actor *types.Actor, req *types.LogListRequest) (*response.PageData[*models.SystemLog], error) {
	if err := CanPerform(actor, ActionModerate, Resource{Kind: KindUser}).Err(); err != nil {
		return nil, err
	}
	p := toPage(&req.PageQuery)
	items, total, err := s.LogDAO.List(ctx, dao.LogFilter{Action: req.Action, UserID: req.UserID}, p)
	if err != nil {
		return nil, err
	}
	return response.NewPage(items, req.Page, req.Limit, total), nil
}
