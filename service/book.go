package service

import (
	"Folio/dao"
	"Folio/models"
	"Folio/pkg/response"
	"Folio/types"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	maxBookTags   = 10
	maxTagLength  = 50
	maxBookTitle  = 255
	maxBookAuthor = 255
)

var _ IBookService = (*BookService)(nil)

type IBookService interface {
	List(ctx context.Context, req *types.BookListRequest) (*response.PageData[*models.Book], error)
	Get(ctx context.Context, id uint64) (*models.Book, error)
	Create(ctx context.Context, actor *types.Actor, req *types.CreateBookRequest) (*models.Book, error)
	Update(ctx context.Context, actor *types.Actor, id uint64, req *types.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, actor *types.Actor, id uint64) error
}

type BookService struct {
	BookDAO   *dao.BookDAO
	TagDAO    *dao.TagDAO
	ReviewDAO *dao.ReviewDAO
	LogDAO    *dao.SystemLogDAO
	Counter   *CounterService
}

func (s *BookService) List(ctx context.Context, req *types.BookListRequest) (*response.PageData[*models.Book], error) {
	p := toPage(&req.PageQuery)
	items, total, err := s.BookDAO.List(ctx, dao.BookFilter{
		Keyword: strings.TrimSpace(req.Q),
		Tag:     normalizeTag(req.Tag),
		Sort:    req.Sort,
	}, p)
	if err != nil {
		return nil, err
	}
	return response.NewPage(items, req.Page, req.Limit, total), nil
}

func (s *BookService) Get(ctx context.Context, id uint64) (*models.Book, error) {
	book, err := s.BookDAO.GetWithTags(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// Create 任何登录用户都可以录入书籍
func (s *BookService) Create(ctx context.Context, actor *types.Actor, req *types.CreateBookRequest) (*models.Book, error) {
	if err := CanPerform(actor, ActionCreate, Resource{Kind: KindBook}).Err(); err != nil {
		return nil, err
	}
	title, err := cleanText("title", req.Title, 1, maxBookTitle)
	if err != nil {
		return nil, err
	}
	author, err := cleanText("author", req.Author, 1, maxBookAuthor)
	if err != nil {
		return nil, err
	}
	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       title,
		Author:      author,
		ISBN:        optionalISBN(req.ISBN),
		Publisher:   strings.TrimSpace(req.Publisher),
		PublishYear: req.PublishYear,
		Description: req.Description,
		CoverURL:    strings.TrimSpace(req.CoverURL),
		CreatedBy:   actor.ID,
	}
	err = s.BookDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			if dao.IsDuplicateKey(err) {
				return bookExists()
			}
			return err
		}
		return s.setTags(tx, book.ID, tags)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, book.ID)
}

func (s *BookService) Update(ctx context.Context, actor *types.Actor, id uint64, req *types.UpdateBookRequest) (*models.Book, error) {
	book, err := s.BookDAO.FindById(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if err := CanPerform(actor, ActionUpdate, BookResource(book)).Err(); err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if req.Title != nil {
		if updates["title"], err = cleanText("title", *req.Title, 1, maxBookTitle); err != nil {
			return nil, err
		}
	}
	if req.Author != nil {
		if updates["author"], err = cleanText("author", *req.Author, 1, maxBookAuthor); err != nil {
			return nil, err
		}
	}
	if req.ISBN != nil {
		updates["isbn"] = optionalISBN(*req.ISBN)
	}
	if req.Publisher != nil {
		updates["publisher"] = strings.TrimSpace(*req.Publisher)
	}
	if req.PublishYear != nil {
		updates["publish_year"] = *req.PublishYear
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverURL != nil {
		updates["cover_url"] = strings.TrimSpace(*req.CoverURL)
	}
	var tags []string
	if req.Tags != nil {
		if tags, err = normalizeTags(*req.Tags); err != nil {
			return nil, err
		}
	}

	err = s.BookDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			err := tx.Model(&models.Book{}).Where("id = ?", id).Updates(updates).Error
			if dao.IsDuplicateKey(err) {
				return bookExists()
			}
			if err != nil {
				return err
			}
		}
		if req.Tags != nil {
			return s.setTags(tx, id, tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete 仅管理员，物理删除并级联清理书评及其互动数据
func (s *BookService) Delete(ctx context.Context, actor *types.Actor, id uint64) error {
	book, err := s.BookDAO.FindById(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return ErrBookNotFound
		}
		return err
	}
	if err := CanPerform(actor, ActionDelete, BookResource(book)).Err(); err != nil {
		return err
	}
	if _, ok := models.BookDeletePolicy.(models.HardDelete); !ok {
		return fmt.Errorf("unsupported book delete policy %T", models.BookDeletePolicy)
	}

	return s.BookDAO.Transaction(ctx, func(tx *gorm.DB) error {
		refs, err := s.ReviewDAO.RefsByBook(tx, id)
		if err != nil {
			return err
		}
		reviewIDs := make([]uint64, 0, len(refs))
		authorIDs := make([]uint64, 0, len(refs))
		for _, r := range refs {
			reviewIDs = append(reviewIDs, r.ID)
			authorIDs = append(authorIDs, r.UserID)
		}
		if err := s.ReviewDAO.Purge(tx, reviewIDs); err != nil {
			return err
		}
		tagIDs, err := s.BookDAO.Delete(tx, id)
		if err != nil {
			return err
		}
		if err := s.Counter.AfterTags(tx, tagIDs); err != nil {
			return err
		}
		// 书已删除，只需重算作者计数
		if err := s.Counter.AfterReviewPurge(tx, 0, uniqueIDs(authorIDs)); err != nil {
			return err
		}
		return s.LogDAO.Append(tx, &models.SystemLog{
			UserID:     &actor.ID,
			Action:     models.ActionBookDelete,
			TargetType: string(KindBook),
			TargetID:   id,
			Detail:     fmt.Sprintf("%s (%d reviews)", book.Title, len(reviewIDs)),
		})
	})
}

func (s *BookService) setTags(tx *gorm.DB, bookID uint64, names []string) error {
	tagIDs, err := s.TagDAO.Ensure(tx, names)
	if err != nil {
		return err
	}
	affected, err := s.BookDAO.ReplaceTags(tx, bookID, tagIDs)
	if err != nil {
		return err
	}
	return s.Counter.AfterTags(tx, affected)
}

func normalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// normalizeTags 去空、去重、转小写
func normalizeTags(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = normalizeTag(n)
		if n == "" {
			continue
		}
		if len([]rune(n)) > maxTagLength {
			return nil, response.InvalidInput(fmt.Sprintf("tag must be at most %d characters", maxTagLength))
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) > maxBookTags {
		return nil, response.InvalidInput(fmt.Sprintf("a book can have at most %d tags", maxBookTags))
	}
	return out, nil
}

// optionalISBN 空字符串存为 NULL，避免唯一索引冲突
func optionalISBN(isbn string) *string {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil
	}
	return &isbn
}

func bookExists() error {
	return response.Conflict(response.CodeBookExists, "a book with this ISBN already exists")
}
