package services

import (
	"errors"

	"newshub/helper"
	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Category management is admin-only: categories have no owner, so the
// ownership half of the mutation policy does not apply.
type CategoryService interface {
	CreateCategory(actor models.Actor, input models.CategoryInput) (*models.Category, error)
	UpdateCategory(actor models.Actor, id uint, input models.CategoryInput) (*models.Category, error)
	DeleteCategory(actor models.Actor, id uint) error
	GetCategories() ([]models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	log          zerolog.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log zerolog.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, log: log}
}

func (s *categoryService) CreateCategory(actor models.Actor, input models.CategoryInput) (*models.Category, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}
	if verr := helper.Validate(input); verr != nil {
		return nil, verr
	}

	slug := helper.Slugify(input.Name)
	if slug == "" {
		slug = "category"
	}
	if err := s.checkUnique(input.Name, slug,0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrConflict
		}
		return nil, s.fail(err, "failed to create category")
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(actor models.Actor, id uint, input models.CategoryInput) (*models.Category, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load category")
	}

	if verr := helper.Validate(input); verr != nil {
		return nil, verr
	}

	slug := helper.Slugify(input.Name)
	if slug == "" {
		slug = "category"
	}
	if err := s.checkUnique(input.Name, slug,id); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = slug
	category.Description = input.Description
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrConflict
		}
		return nil, s.fail(err, "failed to update category")
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(actor models.Actor, id uint) error {
	if actor.ID == 0 {
		return models.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return models.ErrForbidden
	}

	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load category")
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return s.fail(err, "failed to delete category")
	}
	return nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, s.fail(err, "failed to list categories")
	}
	return categories, nil
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load category")
	}
	return category, nil
}

// checkUnique rejects a create or update whose name or slug collides
// with another category.
func (s *categoryService) checkUnique(name, slug string, excludeID uint) error {
	if existing, err := s.categoryRepo.GetByName(name); err == nil {
		if existing.ID != excludeID {
			return models.ErrConflict
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.fail(err, "failed to check category name")
	}

	if existing, err := s.categoryRepo.GetBySlug(slug); err == nil {
		if existing.ID != excludeID {
			return models.ErrConflict
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.fail(err, "failed to check category slug")
	}
	return nil
}

func (s *categoryService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}
