package models

import "time"

type NotificationType string

const (
	NotificationArticlePublished NotificationType = "article_published"
	NotificationNewComment       NotificationType = "new_comment"
)

// Notification is the in-app counterpart of the email notifications;
// rows are created as side effects of publish and comment events.
type Notification struct {
	ID        uint             `json:"id" gorm:"primarykey"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	Type      NotificationType `json:"type" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	RelatedID uint             `json:"related_id"`
	Link      string           `json:"link"`
	Read      bool             `json:"read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}
