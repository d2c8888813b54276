package services

import (
	"errors"
	"fmt"

	"newshub/helper"
	"newshub/mailer"
	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(actor models.Actor, articleID uint, input models.CommentInput) (*models.Comment, error)
	GetComments(articleID uint) ([]models.Comment, error)
	DeleteComment(actor models.Actor, articleID, commentID uint) error
}

type commentService struct {
	commentRepo      repositories.CommentRepository
	articleRepo      repositories.ArticleRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	mail             mailer.Mailer
	baseURL          string
	log              zerolog.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	mail mailer.Mailer,
	baseURL string,
	log zerolog.Logger,
) CommentService {
	return &commentService{
		commentRepo:      commentRepo,
		articleRepo:      articleRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mail:             mail,
		baseURL:          baseURL,
		log:              log,
	}
}

func (s *commentService) CreateComment(actor models.Actor, articleID uint, input models.CommentInput) (*models.Comment, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if verr := helper.Validate(input); verr != nil {
		return nil, verr
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load article")
	}

	comment := &models.Comment{
		Content:   input.Content,
		ArticleID: article.ID,
		AuthorID:  actor.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, s.fail(err, "failed to create comment")
	}

	// Self-comments are suppressed: an author commenting on their own
	// article gets no notification.
	if actor.ID != article.AuthorID {
		s.notifyAuthor(article, actor, input.Content, comment.ID)
	}

	created, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, s.fail(err, "failed to reload created comment")
	}
	return created, nil
}

func (s *commentService) GetComments(articleID uint) ([]models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load article")
	}

	comments, err := s.commentRepo.GetByArticle(articleID)
	if err != nil {
		return nil, s.fail(err, "failed to list comments")
	}
	return comments, nil
}

func (s *commentService) DeleteComment(actor models.Actor, articleID, commentID uint) error {
	if actor.ID == 0 {
		return models.ErrUnauthorized
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load comment")
	}
	if comment.ArticleID != articleID {
		return models.ErrNotFound
	}
	if !actor.CanMutate(comment.AuthorID) {
		return models.ErrForbidden
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return s.fail(err, "failed to delete comment")
	}
	return nil
}

func (s *commentService) notifyAuthor(article *models.Article, commenter models.Actor, content string, commentID uint) {
	author, err := s.userRepo.GetByID(article.AuthorID)
	if err != nil {
		s.log.Error().Err(err).Uint("article_id", article.ID).Msg("failed to load author for comment notification")
		return
	}

	commenterName := commenter.Email
	if user, err := s.userRepo.GetByID(commenter.ID); err == nil {
		commenterName = user.Name
	}

	url := fmt.Sprintf("%s/articles/%s", s.baseURL, article.Slug)
	if err := s.mail.SendCommentNotification(author.Email, article.Title, commenterName, content, url); err != nil {
		s.log.Error().Err(err).Uint("article_id", article.ID).Msg("failed to send comment email")
	}

	notification := &models.Notification{
		UserID:    author.ID,
		Type:      models.NotificationNewComment,
		Message:   fmt.Sprintf("%s commented on your article %q", commenterName, article.Title),
		RelatedID: commentID,
		Link:      url,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		s.log.Error().Err(err).Uint("article_id", article.ID).Msg("failed to create comment notification")
	}
}

func (s *commentService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}
