package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	ArticleID uint           `json:"article_id" gorm:"not null;index"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	Author    User           `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
