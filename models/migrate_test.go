package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite 的索引名在整个库内唯一，同名索引会让迁移失败
func TestAutoMigrate_IndexNames(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:TestAutoMigrate_IndexNames?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(All()...))
	// 重复迁移不报错
	require.NoError(t, db.AutoMigrate(All()...))

	indexes := []struct {
		model any
		name  string
	}{
		{&Book{}, "idx_books_created_at"},
		{&Review{}, "idx_reviews_created_at"},
		{&Review{}, "uk_reviews_user_book"},
		{&ReviewLike{}, "uk_likes_user_review"},
		{&ReviewLike{}, "idx_likes_review"},
		{&UserFavorite{}, "uk_favorites_user_review"},
		{&UserFavorite{}, "idx_favorites_review"},
		{&ReviewComment{}, "idx_comments_user"},
		{&SystemLog{}, "idx_logs_user"},
	}
	for _, idx := range indexes {
		assert.True(t, db.Migrator().HasIndex(idx.model, idx.name), idx.name)
	}
}
