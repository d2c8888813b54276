package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

type Article struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	AuthorID  uint          `json:"author_id" gorm:"not null;index"`
	Author    User          `json:"author" gorm:"foreignKey:AuthorID"`
	Title     string        `json:"title" gorm:"not null"`
	Slug      string        `json:"slug" gorm:"uniqueIndex;not null"`
	Content   string        `json:"content" gorm:"type:text"`
	Excerpt   string        `json:"excerpt"`
	Category  string        `json:"category" gorm:"index;not null"`
	Status    ArticleStatus `json:"status" gorm:"default:'draft';index"`
	Featured  bool          `json:"featured" gorm:"default:false"`
	ImageURL  *string       `json:"image_url"`
	Tags      []Tag         `json:"tags" gorm:"many2many:article_tags;"`
	// PublishedAt records the first transition into published and is
	// never cleared, even when the article is later archived.
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
