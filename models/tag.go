package models

type Tag struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name;type:varchar(50);not null;uniqueIndex:uk_tags_name" json:"name"`
	UsageCount int64  `gorm:"column:usage_count;not null;default:0" json:"usage_count"`
}

func (Tag) TableName() string { return "tags" }

// BookTag books 与 tags 的多对多关联表
type BookTag struct {
	BookID uint64 `gorm:"column:book_id;primaryKey" json:"book_id"`
	TagID  uint64 `gorm:"column:tag_id;primaryKey" json:"tag_id"`
}

func (BookTag) TableName() string { return "book_tags" }
