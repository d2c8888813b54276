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

type commentFixture struct {
	svc           services.CommentService
	comments      *mocks.CommentRepository
	articles      *mocks.ArticleRepository
	users         *mocks.UserRepository
	notifications *mocks.NotificationRepository
	mail          *mocks.Mailer
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		comments:      mocks.NewCommentRepository(),
		articles:      mocks.NewArticleRepository(),
		users:         mocks.NewUserRepository(),
		notifications: mocks.NewNotificationRepository(),
		mail:          mocks.NewMailer(),
	}
	f.svc = services.NewCommentService(
		f.comments, f.articles, f.users, f.notifications,
		f.mail, "http://localhost:8080", zerolog.Nop(),
	)
	return f
}

func (f *commentFixture) seedArticle(authorID uint) *models.Article {
	f.users.Seed(models.User{ID: authorID, Name: "Author", Email: "author@example.com"})
	return f.articles.Seed(models.Article{
		AuthorID: authorID,
		Title:    "A Fine Article",
		Slug:     "a-fine-article",
		Content:  validContent,
		Category: "Tech",
		Status:   models.StatusPublished,
	})
}

func TestCreateCommentNotifiesArticleAuthor(t *testing.T) {
	f := newCommentFixture()
	article := f.seedArticle(1)
	f.users.Seed(models.User{ID: 2, Name: "Reader", Email: "reader@example.com"})

	commenter := models.Actor{ID: 2, Email: "reader@example.com", Role: models.RoleUser}
	comment, err := f.svc.CreateComment(commenter, article.ID, models.CommentInput{Content: "Nice read"})
	require.NoError(t, err)
	assert.Equal(t, article.ID, comment.ArticleID)

	emails := f.mail.SentOfKind("comment_notification")
	require.Len(t, emails, 1)
	assert.Equal(t, "author@example.com", emails[0].To)
	assert.Equal(t, 1, f.notifications.CreateCalls)
}

func TestCreateCommentOnOwnArticleIsSilent(t *testing.T) {
	f := newCommentFixture()
	article := f.seedArticle(1)

	author := models.Actor{ID: 1, Email: "author@example.com", Role: models.RoleUser}
	_, err := f.svc.CreateComment(author, article.ID, models.CommentInput{Content: "Footnote"})
	require.NoError(t, err)

	assert.Empty(t, f.mail.Sent)
	assert.Equal(t, 0, f.notifications.CreateCalls)
}

func TestCreateCommentRequiresActor(t *testing.T) {
	f := newCommentFixture()
	article := f.seedArticle(1)

	_, err := f.svc.CreateComment(models.Actor{}, article.ID, models.CommentInput{Content: "Hi"})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Equal(t, 0, f.comments.CreateCalls)
}

func TestCreateCommentOnMissingArticle(t *testing.T) {
	f := newCommentFixture()

	actor := models.Actor{ID: 2, Role: models.RoleUser}
	_, err := f.svc.CreateComment(actor, 404, models.CommentInput{Content: "Hi"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateCommentValidation(t *testing.T) {
	f := newCommentFixture()
	article := f.seedArticle(1)

	actor := models.Actor{ID: 2, Role: models.RoleUser}
	_, err := f.svc.CreateComment(actor, article.ID, models.CommentInput{})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, f.comments.CreateCalls)
}

func TestGetCommentsMissingArticle(t *testing.T) {
	f := newCommentFixture()

	_, err := f.svc.GetComments(404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	f := newCommentFixture()
	article := f.seedArticle(1)

	commenter := models.Actor{ID: 2, Role: models.RoleUser}
	comment, err := f.svc.CreateComment(commenter, article.ID, models.CommentInput{Content: "Hi"})
	require.NoError(t, err)

	stranger := models.Actor{ID: 3, Role: models.RoleUser}
	assert.ErrorIs(t, f.svc.DeleteComment(stranger, article.ID, comment.ID), models.ErrForbidden)

	// The article author does not own the comment either.
	author := models.Actor{ID: 1, Role: models.RoleUser}
	assert.ErrorIs(t, f.svc.DeleteComment(author, article.ID, comment.ID), models.ErrForbidden)

	admin := models.Actor{ID: 9, Role: models.RoleAdmin}
	require.NoError(t, f.svc.DeleteComment(admin, article.ID, comment.ID))
}

func TestDeleteCommentWrongArticle(t *testing.T) {
	f := newCommentFixture()
	article := f.seedArticle(1)

	commenter := models.Actor{ID: 2, Role: models.RoleUser}
	comment, err := f.svc.CreateComment(commenter, article.ID, models.CommentInput{Content: "Hi"})
	require.NoError(t, err)

	err = f.svc.DeleteComment(commenter, article.ID+1, comment.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
