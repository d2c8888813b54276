package services

import (
	"errors"

	"newshub/models"
	"newshub/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type UserService interface {
	GetUsers(actor models.Actor) ([]models.User, error)
	UpdateRole(actor models.Actor, userID uint, role string) (*models.User, error)
	DeleteAccount(actor models.Actor, userID uint) error
}

type userService struct {
	userRepo    repositories.UserRepository
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	log         zerolog.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	log zerolog.Logger,
) UserService {
	return &userService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		log:         log,
	}
}

func (s *userService) GetUsers(actor models.Actor) ([]models.User, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, s.fail(err, "failed to list users")
	}
	return users, nil
}

func (s *userService) UpdateRole(actor models.Actor, userID uint, role string) (*models.User, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load user")
	}

	user.Role = models.NormalizeRole(role)
	if err := s.userRepo.Update(user); err != nil {
		return nil, s.fail(err, "failed to update role")
	}
	return user, nil
}

// DeleteAccount removes a user. The user's comments are deleted, their
// articles are reassigned to the anonymous sentinel user, then the
// account itself is removed. Self-deletion is allowed; deleting someone
// else requires ADMIN.
func (s *userService) DeleteAccount(actor models.Actor, userID uint) error {
	if actor.ID == 0 {
		return models.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load user")
	}
	if !actor.CanMutate(user.ID) {
		return models.ErrForbidden
	}
	if user.Email == models.AnonymousEmail {
		return models.ErrForbidden
	}

	anonymous, err := s.ensureAnonymous()
	if err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByAuthor(user.ID); err != nil {
		return s.fail(err, "failed to cascade comments")
	}
	if err := s.articleRepo.ReassignAuthor(user.ID, anonymous.ID); err != nil {
		return s.fail(err, "failed to reassign articles")
	}
	if err := s.userRepo.Delete(user.ID); err != nil {
		return s.fail(err, "failed to delete user")
	}
	return nil
}

// ensureAnonymous finds or creates the sentinel owner for articles left
// behind by deleted accounts.
func (s *userService) ensureAnonymous() (*models.User, error) {
	user, err := s.userRepo.GetByEmail(models.AnonymousEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.fail(err, "failed to load anonymous user")
	}

	anonymous := &models.User{
		Name:       "Anonymous",
		Email:      models.AnonymousEmail,
		Role:       models.RoleUser,
		IsVerified: true,
	}
	if err := s.userRepo.Create(anonymous); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.reloadAnonymous()
		}
		return nil, s.fail(err, "failed to create anonymous user")
	}
	return anonymous, nil
}

func (s *userService) reloadAnonymous() (*models.User, error) {
	user, err := s.userRepo.GetByEmail(models.AnonymousEmail)
	if err != nil {
		return nil, s.fail(err, "failed to re-fetch anonymous user")
	}
	return user, nil
}

func (s *userService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}
