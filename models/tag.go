package models

import (
	"time"

	"gorm.io/gorm"
)

// Tags are created lazily when an article references a new name and are
// never deleted when the last article stops referencing them.
type Tag struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
