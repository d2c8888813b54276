package services_test

import (
	"testing"

	"newshub/mocks"
	"newshub/models"
	"newshub/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsScopedToOwner(t *testing.T) {
	repo := mocks.NewNotificationRepository()
	svc := services.NewNotificationService(repo, zerolog.Nop())

	repo.Create(&models.Notification{UserID: 1, Type: models.NotificationArticlePublished, Message: "published"})
	repo.Create(&models.Notification{UserID: 2, Type: models.NotificationNewComment, Message: "comment"})

	notifications, err := svc.GetNotifications(models.Actor{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, uint(1), notifications[0].UserID)
}

func TestMarkReadOwnership(t *testing.T) {
	repo := mocks.NewNotificationRepository()
	svc := services.NewNotificationService(repo, zerolog.Nop())

	notification := &models.Notification{UserID: 1, Type: models.NotificationNewComment, Message: "comment"}
	repo.Create(notification)

	stranger := models.Actor{ID: 2, Role: models.RoleUser}
	assert.ErrorIs(t, svc.MarkRead(stranger, notification.ID), models.ErrForbidden)

	owner := models.Actor{ID: 1, Role: models.RoleUser}
	require.NoError(t, svc.MarkRead(owner, notification.ID))

	stored, err := repo.GetByID(notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)
}

func TestMarkReadNotFound(t *testing.T) {
	repo := mocks.NewNotificationRepository()
	svc := services.NewNotificationService(repo, zerolog.Nop())

	owner := models.Actor{ID: 1, Role: models.RoleUser}
	assert.ErrorIs(t, svc.MarkRead(owner, 404), models.ErrNotFound)
}
