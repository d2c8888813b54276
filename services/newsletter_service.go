package services

import (
	"errors"

	"newshub/helper"
	"newshub/mailer"
	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type NewsletterService interface {
	Subscribe(req models.SubscribeRequest) error
	SendNewsletter(actor models.Actor, req models.NewsletterRequest) (int, error)
}

type newsletterService struct {
	subscriberRepo repositories.SubscriberRepository
	mail           mailer.Mailer
	log            zerolog.Logger
}

func NewNewsletterService(subscriberRepo repositories.SubscriberRepository, mail mailer.Mailer, log zerolog.Logger) NewsletterService {
	return &newsletterService{subscriberRepo: subscriberRepo, mail: mail, log: log}
}

func (s *newsletterService) Subscribe(req models.SubscribeRequest) error {
	if verr := helper.Validate(req); verr != nil {
		return verr
	}

	if err := s.subscriberRepo.Create(&models.Subscriber{Email: req.Email}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrConflict
		}
		return s.fail(err, "failed to create subscriber")
	}
	return nil
}

// SendNewsletter broadcasts to every subscriber; the mailer chunks the
// recipient list. Returns the number of addresses targeted.
func (s *newsletterService) SendNewsletter(actor models.Actor, req models.NewsletterRequest) (int, error) {
	if actor.ID == 0 {
		return 0, models.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return 0, models.ErrForbidden
	}
	if verr := helper.Validate(req); verr != nil {
		return 0, verr
	}

	emails, err := s.subscriberRepo.GetAllEmails()
	if err != nil {
		return 0, s.fail(err, "failed to load subscribers")
	}
	if len(emails) == 0 {
		return 0, nil
	}

	if err := s.mail.SendNewsletter(emails, req.Subject, req.Content); err != nil {
		return 0, s.fail(err, "failed to send newsletter")
	}
	return len(emails), nil
}

func (s *newsletterService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}
