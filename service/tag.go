package service

import (
	"Folio/dao"
	"Folio/models"
	"context"
)

const defaultTagLimit = 20

type ITagService interface {
	Popular(ctx context.Context, limit int) ([]*models.Tag, error)
}

type TagService struct {
	TagDAO *dao.TagDAO
}

func (s *TagService) Popular(ctx context.Context, limit int) ([]*models.Tag, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTagLimit
	}
	return s.TagDAO.Popular(ctx, limit)
}
