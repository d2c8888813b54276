package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"newshub/helper"
	"newshub/mailer"
	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// excerptLength bounds the auto-derived excerpt when the author does not
// supply one.
const excerptLength = 150

type ArticleService interface {
	CreateArticle(actor models.Actor, input models.ArticleInput) (*models.Article, error)
	UpdateArticle(actor models.Actor, id uint, input models.ArticleInput) (*models.Article, error)
	DeleteArticle(actor models.Actor, id uint) error
	GetArticle(id uint) (*models.Article, error)
	GetArticleBySlug(slug string) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	GetTags() ([]models.Tag, error)
}

type articleService struct {
	articleRepo      repositories.ArticleRepository
	tagRepo          repositories.TagRepository
	categoryRepo     repositories.CategoryRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	mail             mailer.Mailer
	baseURL          string
	log              zerolog.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	mail mailer.Mailer,
	baseURL string,
	log zerolog.Logger,
) ArticleService {
	return &articleService{
		articleRepo:      articleRepo,
		tagRepo:          tagRepo,
		categoryRepo:     categoryRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mail:             mail,
		baseURL:          baseURL,
		log:              log,
	}
}

func (s *articleService) CreateArticle(actor models.Actor, input models.ArticleInput) (*models.Article, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if verr := helper.Validate(input); verr != nil {
		return nil, verr
	}

	if input.Status == "" {
		input.Status = models.StatusDraft
	}
	if err := s.checkCategory(input.Category); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(input.Title, 0)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(input.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		AuthorID: actor.ID,
		Title:    input.Title,
		Slug:     slug,
		Content:  input.Content,
		Excerpt:  deriveExcerpt(input.Excerpt, input.Content),
		Category: input.Category,
		Status:   input.Status,
		Featured: input.Featured,
		ImageURL: input.ImageURL,
		Tags:     tags,
	}
	if input.Status == models.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrConflict
		}
		return nil, s.fail(err, "failed to create article")
	}

	if article.Status == models.StatusPublished {
		s.notifyPublished(article, actor.Email)
	}

	created, err := s.articleRepo.GetByID(article.ID)
	if err != nil {
		return nil, s.fail(err, "failed to reload created article")
	}
	return created, nil
}

func (s *articleService) UpdateArticle(actor models.Actor, id uint, input models.ArticleInput) (*models.Article, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}

	existing, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load article")
	}
	if !actor.CanMutate(existing.AuthorID) {
		return nil, models.ErrForbidden
	}

	if verr := helper.Validate(input); verr != nil {
		return nil, verr
	}
	if input.Status == "" {
		input.Status = models.StatusDraft
	}
	if err := s.checkCategory(input.Category); err != nil {
		return nil, err
	}

	// The slug is re-derived only when the title changes.
	if input.Title != existing.Title {
		slug, err := s.uniqueSlug(input.Title, existing.ID)
		if err != nil {
			return nil, err
		}
		existing.Slug = slug
	}

	wasPublished := existing.Status == models.StatusPublished
	isNowPublished := input.Status == models.StatusPublished

	existing.Title = input.Title
	existing.Content = input.Content
	existing.Excerpt = deriveExcerpt(input.Excerpt, input.Content)
	existing.Category = input.Category
	existing.Status = input.Status
	existing.Featured = input.Featured
	if input.ImageURL != nil {
		existing.ImageURL = input.ImageURL
	}

	// First-publish-wins: PublishedAt is set once and never changed,
	// even across archive and re-publish cycles.
	if isNowPublished && existing.PublishedAt == nil {
		now := time.Now()
		existing.PublishedAt = &now
	}

	if input.Tags != "" {
		tags, err := s.resolveTags(input.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.UpdateWithTags(existing, tags); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, models.ErrConflict
			}
			return nil, s.fail(err, "failed to update article")
		}
	} else {
		if err := s.articleRepo.Update(existing); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, models.ErrConflict
			}
			return nil, s.fail(err, "failed to update article")
		}
	}

	if !wasPublished && isNowPublished {
		// The author is looked up fresh; an admin publishing someone
		// else's article must not receive the author's notification.
		author, err := s.userRepo.GetByID(existing.AuthorID)
		if err != nil {
			s.log.Error().Err(err).Uint("article_id", existing.ID).Msg("failed to load author for publish notification")
		} else {
			s.notifyPublished(existing, author.Email)
		}
	}

	updated, err := s.articleRepo.GetByID(existing.ID)
	if err != nil {
		return nil, s.fail(err, "failed to reload updated article")
	}
	return updated, nil
}

func (s *articleService) DeleteArticle(actor models.Actor, id uint) error {
	if actor.ID == 0 {
		return models.ErrUnauthorized
	}

	existing, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load article")
	}
	if !actor.CanMutate(existing.AuthorID) {
		return models.ErrForbidden
	}

	// Comments are intentionally left in place; only account deletion
	// cascades them.
	if err := s.articleRepo.Delete(id); err != nil {
		return s.fail(err, "failed to delete article")
	}
	return nil
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load article")
	}
	return article, nil
}

func (s *articleService) GetArticleBySlug(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load article")
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	articles, total, err := s.articleRepo.GetList(params)
	if err != nil {
		return nil, 0, s.fail(err, "failed to list articles")
	}
	return articles, total, nil
}

func (s *articleService) GetTags() ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, s.fail(err, "failed to list tags")
	}
	return tags, nil
}

// checkCategory verifies the referenced category exists; articles carry
// the category name as a plain string.
func (s *articleService) checkCategory(name string) error {
	_, err := s.categoryRepo.GetByName(name)
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ValidationError{Fields: map[string][]string{
			"category": {fmt.Sprintf("unknown category %q", name)},
		}}
	}
	return s.fail(err, "failed to check category")
}

// uniqueSlug derives the slug for a title and disambiguates collisions
// with a numeric suffix. excludeID skips the article being updated so
// an unchanged-but-retitled slug cannot collide with itself.
func (s *articleService) uniqueSlug(title string, excludeID uint) (string, error) {
	base := helper.Slugify(title)
	if base == "" {
		// All-punctuation titles slugify to nothing; an empty slug would
		// make the article unreachable by slug.
		base = "article"
	}
	slug := base
	for n := 2; ; n++ {
		existing, err := s.articleRepo.GetBySlug(slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", s.fail(err, "failed to probe slug")
		}
		if existing.ID == excludeID {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// resolveTags turns a comma-separated tag list into tag rows,
// de-duplicating names and creating missing tags. A concurrent create of
// the same new name is resolved by re-fetching after the unique
// constraint rejects the duplicate.
func (s *articleService) resolveTags(raw string) ([]models.Tag, error) {
	var tags []models.Tag
	seen := map[string]bool{}

	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := s.tagRepo.GetByName(name)
		if err == nil {
			tags = append(tags, *tag)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.fail(err, "failed to look up tag")
		}

		newTag := &models.Tag{Name: name}
		if err := s.tagRepo.Create(newTag); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				tag, err = s.tagRepo.GetByName(name)
				if err != nil {
					return nil, s.fail(err, "failed to re-fetch tag after conflict")
				}
				tags = append(tags, *tag)
				continue
			}
			return nil, s.fail(err, "failed to create tag")
		}
		tags = append(tags, *newTag)
	}
	return tags, nil
}

// notifyPublished dispatches the article-published email and in-app
// notification. Best effort: failures are logged and never surfaced.
func (s *articleService) notifyPublished(article *models.Article, authorEmail string) {
	url := fmt.Sprintf("%s/articles/%s", s.baseURL, article.Slug)

	if err := s.mail.SendArticlePublished(authorEmail, article.Title, url); err != nil {
		s.log.Error().Err(err).Uint("article_id", article.ID).Msg("failed to send publish email")
	}

	notification := &models.Notification{
		UserID:    article.AuthorID,
		Type:      models.NotificationArticlePublished,
		Message:   fmt.Sprintf("Your article %q has been published", article.Title),
		RelatedID: article.ID,
		Link:      url,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		s.log.Error().Err(err).Uint("article_id", article.ID).Msg("failed to create publish notification")
	}
}

func (s *articleService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}

func deriveExcerpt(excerpt, content string) string {
	if excerpt != "" {
		return excerpt
	}
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}
