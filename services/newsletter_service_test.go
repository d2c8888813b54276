package services_test

import (
	"fmt"
	"testing"

	"newshub/mocks"
	"newshub/models"
	"newshub/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsletterFixture() (services.NewsletterService, *mocks.SubscriberRepository, *mocks.Mailer) {
	subscribers := mocks.NewSubscriberRepository()
	mail := mocks.NewMailer()
	return services.NewNewsletterService(subscribers, mail, zerolog.Nop()), subscribers, mail
}

func TestSubscribeDuplicate(t *testing.T) {
	svc, _, _ := newNewsletterFixture()

	require.NoError(t, svc.Subscribe(models.SubscribeRequest{Email: "reader@example.com"}))
	assert.ErrorIs(t, svc.Subscribe(models.SubscribeRequest{Email: "reader@example.com"}), models.ErrConflict)
}

func TestSubscribeValidation(t *testing.T) {
	svc, subscribers, _ := newNewsletterFixture()

	err := svc.Subscribe(models.SubscribeRequest{Email: "not-an-email"})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, subscribers.CreateCalls)
}

func TestSendNewsletterAdminOnly(t *testing.T) {
	svc, _, mail := newNewsletterFixture()

	req := models.NewsletterRequest{Subject: "Weekly digest", Content: "This week on NewsHub"}

	_, err := svc.SendNewsletter(models.Actor{ID: 1, Role: models.RoleUser}, req)
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Empty(t, mail.Sent)
}

func TestSendNewsletterCountsRecipients(t *testing.T) {
	svc, _, mail := newNewsletterFixture()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Subscribe(models.SubscribeRequest{
			Email: fmt.Sprintf("reader%d@example.com", i),
		}))
	}

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	count, err := svc.SendNewsletter(admin, models.NewsletterRequest{
		Subject: "Weekly digest",
		Content: "This week on NewsHub",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	sent := mail.SentOfKind("newsletter")
	require.Len(t, sent, 1)
	assert.Len(t, sent[0].Recipients, 3)
}

func TestSendNewsletterNoSubscribers(t *testing.T) {
	svc, _, mail := newNewsletterFixture()

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	count, err := svc.SendNewsletter(admin, models.NewsletterRequest{
		Subject: "Weekly digest",
		Content: "This week on NewsHub",
	})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, mail.Sent)
}
