package services

import (
	"errors"

	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type NotificationService interface {
	GetNotifications(actor models.Actor) ([]models.Notification, error)
	MarkRead(actor models.Actor, id uint) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	log              zerolog.Logger
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, log zerolog.Logger) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, log: log}
}

func (s *notificationService) GetNotifications(actor models.Actor) ([]models.Notification, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}

	notifications, err := s.notificationRepo.GetByUser(actor.ID)
	if err != nil {
		return nil, s.fail(err, "failed to list notifications")
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(actor models.Actor, id uint) error {
	if actor.ID == 0 {
		return models.ErrUnauthorized
	}

	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load notification")
	}
	if !actor.CanMutate(notification.UserID) {
		return models.ErrForbidden
	}

	notification.Read = true
	if err := s.notificationRepo.Update(notification); err != nil {
		return s.fail(err, "failed to mark notification read")
	}
	return nil
}

func (s *notificationService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}
