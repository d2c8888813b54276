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

type userFixture struct {
	svc      services.UserService
	users    *mocks.UserRepository
	articles *mocks.ArticleRepository
	comments *mocks.CommentRepository
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:    mocks.NewUserRepository(),
		articles: mocks.NewArticleRepository(),
		comments: mocks.NewCommentRepository(),
	}
	f.svc = services.NewUserService(f.users, f.articles, f.comments, zerolog.Nop())
	return f
}

func TestGetUsersAdminOnly(t *testing.T) {
	f := newUserFixture()
	f.users.Seed(models.User{ID: 1, Name: "Jane", Email: "jane@example.com"})

	_, err := f.svc.GetUsers(models.Actor{ID: 1, Role: models.RoleUser})
	assert.ErrorIs(t, err, models.ErrForbidden)

	users, err := f.svc.GetUsers(models.Actor{ID: 9, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateRoleNormalizesCasing(t *testing.T) {
	f := newUserFixture()
	seeded := f.users.Seed(models.User{ID: 1, Name: "Jane", Email: "jane@example.com", Role: models.RoleUser})

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	user, err := f.svc.UpdateRole(admin, seeded.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// Unknown roles fall back to USER rather than erroring.
	user, err = f.svc.UpdateRole(admin, seeded.ID, "superuser")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUpdateRoleAdminOnly(t *testing.T) {
	f := newUserFixture()
	seeded := f.users.Seed(models.User{ID: 1, Name: "Jane", Email: "jane@example.com"})

	_, err := f.svc.UpdateRole(models.Actor{ID: 1, Role: models.RoleUser}, seeded.ID, "admin")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestDeleteAccountCascade(t *testing.T) {
	f := newUserFixture()
	seeded := f.users.Seed(models.User{ID: 1, Name: "Jane", Email: "jane@example.com"})

	article := f.articles.Seed(models.Article{AuthorID: seeded.ID, Title: "Mine", Slug: "mine"})
	f.comments.Create(&models.Comment{Content: "Hi", ArticleID: article.ID, AuthorID: seeded.ID})

	actor := models.Actor{ID: seeded.ID, Role: models.RoleUser}
	require.NoError(t, f.svc.DeleteAccount(actor, seeded.ID))

	// Comments are gone, the article survives under the anonymous user.
	remaining, err := f.comments.GetByArticle(article.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	anonymous, err := f.users.GetByEmail(models.AnonymousEmail)
	require.NoError(t, err)

	reassigned, err := f.articles.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, anonymous.ID, reassigned.AuthorID)

	_, err = f.users.GetByID(seeded.ID)
	assert.Error(t, err)
}

func TestDeleteAccountSelfOrAdmin(t *testing.T) {
	f := newUserFixture()
	seeded := f.users.Seed(models.User{ID: 1, Name: "Jane", Email: "jane@example.com"})

	stranger := models.Actor{ID: 2, Role: models.RoleUser}
	assert.ErrorIs(t, f.svc.DeleteAccount(stranger, seeded.ID), models.ErrForbidden)

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	require.NoError(t, f.svc.DeleteAccount(admin, seeded.ID))
}

func TestDeleteAccountProtectsAnonymousUser(t *testing.T) {
	f := newUserFixture()
	anonymous := f.users.Seed(models.User{ID: 1, Name: "Anonymous", Email: models.AnonymousEmail})

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	assert.ErrorIs(t, f.svc.DeleteAccount(admin, anonymous.ID), models.ErrForbidden)
}

func TestDeleteAccountNotFound(t *testing.T) {
	f := newUserFixture()

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	assert.ErrorIs(t, f.svc.DeleteAccount(admin, 404), models.ErrNotFound)
}
