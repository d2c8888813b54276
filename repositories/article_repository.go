package repositories

import (
	"newshub/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	Update(article *models.Article) error
	UpdateWithTags(article *models.Article, tags []models.Tag) error
	Delete(id uint) error
	ReassignAuthor(fromID, toID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Tags").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Tags")

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}
	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Status == string(models.StatusPublished) {
		query = query.Order("published_at desc")
	} else {
		query = query.Order("created_at desc")
	}

	err := query.Offset(params.Offset).Limit(params.Limit).Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// UpdateWithTags persists the article's fields and replaces its tag set
// in a single transaction so a crash between the two steps cannot leave
// the tag links inconsistent with the row.
func (r *articleRepository) UpdateWithTags(article *models.Article, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		return tx.Model(article).Association("Tags").Replace(tags)
	})
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// ReassignAuthor moves every article owned by fromID to toID. Used by
// account deletion to hand articles to the anonymous sentinel user.
func (r *articleRepository) ReassignAuthor(fromID, toID uint) error {
	return r.db.Model(&models.Article{}).
		Where("author_id = ?", fromID).
		Update("author_id", toID).Error
}
