package services

import (
	"newshub/helper"
	"newshub/mailer"
	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
)

type ContactService interface {
	SubmitContact(req models.ContactRequest) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mail        mailer.Mailer
	log         zerolog.Logger
}

func NewContactService(contactRepo repositories.ContactRepository, mail mailer.Mailer, log zerolog.Logger) ContactService {
	return &contactService{contactRepo: contactRepo, mail: mail, log: log}
}

func (s *contactService) SubmitContact(req models.ContactRequest) error {
	if verr := helper.Validate(req); verr != nil {
		return verr
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		s.log.Error().Err(err).Msg("failed to store contact message")
		return models.ErrInternal
	}

	// The acknowledgement is best effort; the stored message is the
	// source of truth.
	if err := s.mail.SendContactResponse(req.Email, req.Name, req.Message); err != nil {
		s.log.Error().Err(err).Msg("failed to send contact response")
	}
	return nil
}
