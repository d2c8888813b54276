package mocks

import (
	"strings"

	"newshub/models"

	"gorm.io/gorm"
)

// ArticleRepository is an in-memory stand-in for the gorm-backed
// repository. Write counters let tests assert that a failed call never
// touched storage.
type ArticleRepository struct {
	Articles map[uint]*models.Article
	NextID   uint

	CreateCalls         int
	UpdateCalls         int
	UpdateWithTagsCalls int
	DeleteCalls         int

	CreateErr error
	UpdateErr error
}

func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{Articles: map[uint]*models.Article{}, NextID: 1}
}

// Seed registers an article directly, bypassing the call counters.
func (m *ArticleRepository) Seed(article models.Article) *models.Article {
	if article.ID == 0 {
		article.ID = m.NextID
	}
	if article.ID >= m.NextID {
		m.NextID = article.ID + 1
	}
	m.Articles[article.ID] = &article
	return &article
}

func (m *ArticleRepository) Create(article *models.Article) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	article.ID = m.NextID
	m.NextID++
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *ArticleRepository) GetByID(id uint) (*models.Article, error) {
	article, ok := m.Articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *article
	return &copied, nil
}

func (m *ArticleRepository) GetBySlug(slug string) (*models.Article, error) {
	for _, article := range m.Articles {
		if article.Slug == slug {
			copied := *article
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *ArticleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var matched []models.Article
	for _, article := range m.Articles {
		if params.Status != "" && string(article.Status) != params.Status {
			continue
		}
		if params.Category != "" && article.Category != params.Category {
			continue
		}
		if params.AuthorID != 0 && article.AuthorID != params.AuthorID {
			continue
		}
		if params.Featured != nil && article.Featured != *params.Featured {
			continue
		}
		if params.Search != "" &&
			!strings.Contains(strings.ToLower(article.Title), strings.ToLower(params.Search)) &&
			!strings.Contains(strings.ToLower(article.Content), strings.ToLower(params.Search)) {
			continue
		}
		matched = append(matched, *article)
	}

	total := int64(len(matched))
	if params.Offset >= len(matched) {
		return nil, total, nil
	}
	end := params.Offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[params.Offset:end], total, nil
}

func (m *ArticleRepository) Update(article *models.Article) error {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *ArticleRepository) UpdateWithTags(article *models.Article, tags []models.Tag) error {
	m.UpdateWithTagsCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	article.Tags = tags
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *ArticleRepository) Delete(id uint) error {
	m.DeleteCalls++
	delete(m.Articles, id)
	return nil
}

func (m *ArticleRepository) ReassignAuthor(fromID, toID uint) error {
	for _, article := range m.Articles {
		if article.AuthorID == fromID {
			article.AuthorID = toID
		}
	}
	return nil
}

// WriteCalls sums every mutating call, whichever path it took.
func (m *ArticleRepository) WriteCalls() int {
	return m.CreateCalls + m.UpdateCalls + m.UpdateWithTagsCalls + m.DeleteCalls
}
