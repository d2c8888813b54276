package mocks

import (
	"newshub/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	Users  map[uint]*models.User
	NextID uint

	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	CreateErr error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{Users: map[uint]*models.User{}, NextID: 1}
}

// Seed registers a user directly, bypassing the call counters.
func (m *UserRepository) Seed(user models.User) *models.User {
	if user.ID == 0 {
		user.ID = m.NextID
	}
	if user.ID >= m.NextID {
		m.NextID = user.ID + 1
	}
	m.Users[user.ID] = &user
	return &user
}

func (m *UserRepository) Create(user *models.User) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.NextID
	m.NextID++
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

func (m *UserRepository) GetByID(id uint) (*models.User, error) {
	user, ok := m.Users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepository) GetByVerificationToken(token string) (*models.User, error) {
	for _, user := range m.Users {
		if user.VerificationToken != nil && *user.VerificationToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepository) GetByPasswordResetToken(token string) (*models.User, error) {
	for _, user := range m.Users {
		if user.PasswordResetToken != nil && *user.PasswordResetToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range m.Users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *UserRepository) Update(user *models.User) error {
	m.UpdateCalls++
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

func (m *UserRepository) Delete(id uint) error {
	m.DeleteCalls++
	delete(m.Users, id)
	return nil
}
