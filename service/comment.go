package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	maxCommentLength  = 1000
	commentEditWindow = 24 * time.Hour
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, actor *types.Actor, reviewID uint64, content string) (*types.CommentItem, error)
	Reply(ctx context.Context, actor *types.Actor, parentID uint64, content string) (*types.CommentItem, error)
	Edit(ctx context.Context, actor *types.Actor, commentID uint64, content string) (*types.CommentItem, error)
	Delete(ctx context.Context, actor *types.Actor, commentID uint64) error
	Moderate(ctx context.Context, actor *types.Actor, commentID uint64, status string) (*types.CommentItem, error)
	List(ctx context.Context, reviewID uint64, actor *types.Actor, page types.PageQuery) (*response.PageData[*types.CommentThread], error)
}

type CommentService struct {
	ReviewDAO  *dao.ReviewDAO
	CommentDAO *dao.CommentDAO
	UserDAO    *dao.UserDAO
	LogDAO     *dao.SystemLogDAO
	Counter    *CounterService
	Clock      func() time.Time `wire:"-"`
}

// Create 一级评论，默认直接通过审核
func (s *CommentService) Create(ctx context.Context, actor *types.Actor, reviewID uint64, content string) (*types.CommentItem, error) {
	if err := CanPerform(actor, ActionCreate, Resource{Kind: KindComment}).Err(); err != nil {
		return nil, err
	}
	content, err := cleanText("content", content, 1, maxCommentLength)
	if err != nil {
		return nil, err
	}
	if _, err := s.ReviewDAO.FindApproved(ctx, reviewID); err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comment := &models.ReviewComment{
		ReviewID: reviewID,
		UserID:   actor.ID,
		Content:  content,
		Status:   models.CommentStatusApproved,
	}
	if err := s.insert(ctx, comment); err != nil {
		return nil, err
	}
	return s.item(ctx, comment), nil
}

// Reply 回复始终挂在一级评论下，回复的回复会被提升
func (s *CommentService) Reply(ctx context.Context, actor *types.Actor, parentID uint64, content string) (*types.CommentItem, error) {
	if err := CanPerform(actor, ActionCreate, Resource{Kind: KindComment}).Err(); err != nil {
		return nil, err
	}
	content, err := cleanText("content", content, 1, maxCommentLength)
	if err != nil {
		return nil, err
	}

	parent, err := s.CommentDAO.FindById(ctx, parentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if parent.Status != models.CommentStatusApproved {
		return nil, ErrCommentNotFound
	}
	if _, err := s.ReviewDAO.FindApproved(ctx, parent.ReviewID); err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	rootID := parent.ID
	if !parent.IsTopLevel() {
		rootID = *parent.ParentID
	}
	comment := &models.ReviewComment{
		ReviewID: parent.ReviewID,
		UserID:   actor.ID,
		ParentID: &rootID,
		Content:  content,
		Status:   models.CommentStatusApproved,
	}
	if err := s.insert(ctx, comment); err != nil {
		return nil, err
	}
	return s.item(ctx, comment), nil
}

func (s *CommentService) insert(ctx context.Context, comment *models.ReviewComment) error {
	return s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.CommentDAO.Insert(tx, comment); err != nil {
			return err
		}
		return s.Counter.AfterComment(tx, comment.ReviewID)
	})
}

// Edit 仅作者本人，且在创建后 24 小时内
func (s *CommentService) Edit(ctx context.Context, actor *types.Actor, commentID uint64, content string) (*types.CommentItem, error) {
	comment, err := s.load(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := CanPerform(actor, ActionUpdate, CommentResource(comment)).Err(); err != nil {
		return nil, err
	}
	// 管理员可以删除和审核，但不能改别人的内容
	if comment.UserID != actor.ID {
		return nil, response.Forbidden(response.CodeAccessDenied, "only the author can edit this comment")
	}
	if nowOr(s.Clock).Sub(comment.CreatedAt) > commentEditWindow {
		return nil, response.Forbidden(response.CodeEditWindowExpired, "comments can only be edited within 24 hours")
	}
	content, err = cleanText("content", content, 1, maxCommentLength)
	if err != nil {
		return nil, err
	}

	if err := s.CommentDAO.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	comment.Content = content
	comment.UpdatedAt = nowOr(s.Clock)
	return s.item(ctx, comment), nil
}

// Delete 有回复的评论不能删除
func (s *CommentService) Delete(ctx context.Context, actor *types.Actor, commentID uint64) error {
	comment, err := s.load(ctx, commentID)
	if err != nil {
		return err
	}
	if err := CanPerform(actor, ActionDelete, CommentResource(comment)).Err(); err != nil {
		return err
	}

	return s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		switch policy := models.CommentDeletePolicy.(type) {
		case models.SoftDelete:
			if err := s.CommentDAO.UpdateStatus(tx, commentID, policy.Status); err != nil {
				return err
			}
		case models.HardDelete:
			if !policy.Cascade {
				replies, err := s.CommentDAO.CountReplies(tx, commentID)
				if err != nil {
					return err
				}
				if replies > 0 {
					return response.Conflict(response.CodeHasReplies, "comment has replies").
						WithData(types.HasRepliesData{RepliesCount: replies})
				}
			}
			if err := s.CommentDAO.Remove(tx, commentID); err != nil {
				return err
			}
		}
		return s.Counter.AfterComment(tx, comment.ReviewID)
	})
}

// Moderate 只改变自身状态，不影响回复
func (s *CommentService) Moderate(ctx context.Context, actor *types.Actor, commentID uint64, status string) (*types.CommentItem, error) {
	if err := CanPerform(actor, ActionModerate, Resource{Kind: KindComment}).Err(); err != nil {
		return nil, err
	}
	if !models.ValidCommentStatus(status) {
		return nil, response.InvalidInput("status must be one of approved, pending, rejected")
	}
	comment, err := s.load(ctx, commentID)
	if err != nil {
		return nil, err
	}

	err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.CommentDAO.UpdateStatus(tx, commentID, status); err != nil {
			return err
		}
		return s.LogDAO.Append(tx, &models.SystemLog{
			UserID:     &actor.ID,
			Action:     models.ActionCommentMod,
			TargetType: string(KindComment),
			TargetID:   commentID,
			Detail:     comment.Status + " -> " + status,
		})
	})
	if err != nil {
		return nil, err
	}
	comment.Status = status
	return s.item(ctx, comment), nil
}

// List 一级评论分页，每条附带全部回复
// 待审核/被拒绝的评论只对作者本人和管理员可见
func (s *CommentService) List(ctx context.Context, reviewID uint64, actor *types.Actor, page types.PageQuery) (*response.PageData[*types.CommentThread], error) {
	review, err := s.ReviewDAO.FindById(ctx, reviewID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if !CanPerform(actor, ActionRead, ReviewResource(review)).Allowed {
		return nil, ErrReviewNotFound
	}

	scope := dao.CommentScope{All: actor.IsAdmin(), ViewerID: actor.IDOrZero()}
	p := toPage(&page)
	roots, total, err := s.CommentDAO.ListTopLevel(ctx, reviewID, scope, p)
	if err != nil {
		return nil, err
	}

	rootIDs := make([]uint64, 0, len(roots))
	for _, c := range roots {
		rootIDs = append(rootIDs, c.ID)
	}
	replies, err := s.CommentDAO.RepliesOf(ctx, rootIDs, scope)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(roots))
	for _, c := range roots {
		userIDs = append(userIDs, c.UserID)
		for _, r := range replies[c.ID] {
			userIDs = append(userIDs, r.UserID)
		}
	}
	users, err := s.UserDAO.MapByIds(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}

	threads := make([]*types.CommentThread, 0, len(roots))
	for _, c := range roots {
		thread := &types.CommentThread{
			CommentItem: types.NewCommentItem(c, users[c.UserID]),
			Replies:     make([]*types.CommentItem, 0, len(replies[c.ID])),
		}
		for _, r := range replies[c.ID] {
			thread.Replies = append(thread.Replies, types.NewCommentItem(r, users[r.UserID]))
		}
		threads = append(threads, thread)
	}
	return response.NewPage(threads, page.Page, page.Limit, total), nil
}

func (s *CommentService) load(ctx context.Context, id uint64) (*models.ReviewComment, error) {
	comment, err := s.CommentDAO.FindById(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// item 作者信息查询失败不影响主流程
func (s *CommentService) item(ctx context.Context, c *models.ReviewComment) *types.CommentItem {
	author, _ := s.UserDAO.FindById(ctx, c.UserID)
	return types.NewCommentItem(c, author)
}
