package dao

import (
	"Folio/models"
	"context"

	"gorm.io/gorm"
)

const (
	BookSortNewest  = "newest"
	BookSortRating  = "rating"
	BookSortReviews = "reviews"
)

var bookOrders = map[string]string{
	BookSortNewest:  "created_at DESC, id DESC",
	BookSortRating:  "average_rating DESC, id DESC",
	BookSortReviews: "total_reviews DESC, id DESC",
}

// BookFilter 书籍列表筛选条件
type BookFilter struct {
	Keyword string
	Tag     string
	Sort    string
}

type BookDAO struct {
	Repo[models.Book]
}

func NewBookDAO(db *gorm.DB) *BookDAO {
	return &BookDAO{Repo: NewRepo[models.Book](db)}
}

// GetWithTags 不存在时返回 gorm.ErrRecordNotFound
func (d *BookDAO) GetWithTags(ctx context.Context, id uint64) (*models.Book, error) {
	var book models.Book
	if err := d.Db.WithContext(ctx).Preload("Tags").First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (d *BookDAO) List(ctx context.Context, f BookFilter, page Page) ([]*models.Book, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Book{})
	if f.Keyword != "" {
		like := "%" + f.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ? OR isbn LIKE ?", like, like, like)
	}
	if f.Tag != "" {
		query = query.Where("id IN (?)", d.Db.Table("book_tags").
			Select("book_tags.book_id").
			Joins("JOIN tags ON tags.id = book_tags.tag_id").
			Where("tags.name = ?", f.Tag))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := bookOrders[f.Sort]
	if !ok {
		order = bookOrders[BookSortNewest]
	}
	books := make([]*models.Book, 0, page.Limit)
	err := query.Preload("Tags").
		Order(order).
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&books).Error
	return books, total, err
}

// ReplaceTags 重写 book_tags，返回新旧 tag id 的并集以便重算 usage_count
func (d *BookDAO) ReplaceTags(tx *gorm.DB, bookID uint64, tagIDs []uint64) ([]uint64, error) {
	var old []uint64
	if err := tx.Model(&models.BookTag{}).Where("book_id = ?", bookID).Pluck("tag_id", &old).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("book_id = ?", bookID).Delete(&models.BookTag{}).Error; err != nil {
		return nil, err
	}
	if len(tagIDs) > 0 {
		rows := make([]models.BookTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			rows = append(rows, models.BookTag{BookID: bookID, TagID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	return unionIDs(old, tagIDs), nil
}

// Delete 物理删除书籍及其标签关联，返回受影响的 tag id
// 书评等下级数据由调用方先行清理
func (d *BookDAO) Delete(tx *gorm.DB, bookID uint64) ([]uint64, error) {
	tagIDs, err := d.ReplaceTags(tx, bookID, nil)
	if err != nil {
		return nil, err
	}
	if err := tx.Delete(&models.Book{}, bookID).Error; err != nil {
		return nil, err
	}
	return tagIDs, nil
}

func unionIDs(a, b []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(a)+len(b))
	out := make([]uint64, 0, len(a)+len(b))
	for _, list := range [][]uint64{a, b} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
