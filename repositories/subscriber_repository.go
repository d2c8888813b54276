package repositories

import (
	"newshub/models"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetAllEmails() ([]string, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	return &subscriber, err
}

func (r *subscriberRepository) GetAllEmails() ([]string, error) {
	var emails []string
	err := r.db.Model(&models.Subscriber{}).
		Order("created_at asc").
		Pluck("email", &emails).Error
	return emails, err
}
