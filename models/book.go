package models

import "time"

// Book 对应表 books
// total_reviews / average_rating 只统计 approved 状态的书评
type Book struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"column:title;type:varchar(255);not null;index:idx_books_title" json:"title"`
	Author        string    `gorm:"column:author;type:varchar(255);not null;index:idx_books_author" json:"author"`
	ISBN          *string   `gorm:"column:isbn;type:varchar(20);uniqueIndex:uk_books_isbn" json:"isbn,omitempty"`
	Publisher     string    `gorm:"column:publisher;type:varchar(255);not null;default:''" json:"publisher"`
	PublishYear   int       `gorm:"column:publish_year;not null;default:0" json:"publish_year"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	CoverURL      string    `gorm:"column:cover_url;type:varchar(500);not null;default:''" json:"cover_url"`
	CreatedBy     uint64    `gorm:"column:created_by;not null;default:0" json:"created_by"`
	TotalReviews  int64     `gorm:"column:total_reviews;not null;default:0" json:"total_reviews"`
	AverageRating float64   `gorm:"column:average_rating;type:decimal(3,2);not null;default:0" json:"average_rating"`
	Tags          []Tag     `gorm:"many2many:book_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;index:idx_books_created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Book) TableName() string { return "books" }
