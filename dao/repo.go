package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Repo 通用的单表操作，具体 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Transaction 在同一个事务里执行 fn，fn 内只能使用 tx
func (r *Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}

// FindById 不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByIds(ctx context.Context, ids []uint64) ([]*T, error) {
	items := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&count).Error
	return count, err
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

// IsNotFound gorm 未查询到记录
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey 唯一键冲突
// TranslateError 开启时为 gorm.ErrDuplicatedKey，否则退回按驱动错误文本判断
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// Page 分页查询的偏移量参数
type Page struct {
	Offset int
	Limit  int
}
