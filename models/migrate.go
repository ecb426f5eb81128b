package models

// All 返回需要 AutoMigrate 的模型，顺序满足外键依赖
func All() []any {
	return []any{
		&User{},
		&Tag{},
		&Book{},
		&Review{},
		&ReviewLike{},
		&UserFavorite{},
		&ReviewComment{},
		&SystemLog{},
	}
}
