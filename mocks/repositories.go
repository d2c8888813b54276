package mocks

import (
	"newshub/models"

	"gorm.io/gorm"
)

type TagRepository struct {
	Tags   map[string]*models.Tag
	NextID uint

	CreateCalls int
	CreateErr   error
}

func NewTagRepository() *TagRepository {
	return &TagRepository{Tags: map[string]*models.Tag{}, NextID: 1}
}

func (m *TagRepository) Create(tag *models.Tag) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if _, exists := m.Tags[tag.Name]; exists {
		return gorm.ErrDuplicatedKey
	}
	tag.ID = m.NextID
	m.NextID++
	copied := *tag
	m.Tags[tag.Name] = &copied
	return nil
}

func (m *TagRepository) GetByName(name string) (*models.Tag, error) {
	tag, ok := m.Tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *tag
	return &copied, nil
}

func (m *TagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	for _, tag := range m.Tags {
		tags = append(tags, *tag)
	}
	return tags, nil
}

type CategoryRepository struct {
	Categories map[uint]*models.Category
	NextID     uint

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{Categories: map[uint]*models.Category{}, NextID: 1}
}

// Seed registers a category directly, bypassing the call counters.
func (m *CategoryRepository) Seed(name, slug string) *models.Category {
	category := &models.Category{ID: m.NextID, Name: name, Slug: slug}
	m.NextID++
	m.Categories[category.ID] = category
	return category
}

func (m *CategoryRepository) Create(category *models.Category) error {
	m.CreateCalls++
	category.ID = m.NextID
	m.NextID++
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	category, ok := m.Categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *CategoryRepository) GetByName(name string) (*models.Category, error) {
	for _, category := range m.Categories {
		if category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	for _, category := range m.Categories {
		if category.Slug == slug {
			copied := *category
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *CategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range m.Categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (m *CategoryRepository) Update(category *models.Category) error {
	m.UpdateCalls++
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *CategoryRepository) Delete(id uint) error {
	m.DeleteCalls++
	delete(m.Categories, id)
	return nil
}

type CommentRepository struct {
	Comments map[uint]*models.Comment
	NextID   uint

	CreateCalls         int
	DeleteCalls         int
	DeleteByAuthorCalls int
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{Comments: map[uint]*models.Comment{}, NextID: 1}
}

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.CreateCalls++
	comment.ID = m.NextID
	m.NextID++
	copied := *comment
	m.Comments[comment.ID] = &copied
	return nil
}

func (m *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	comment, ok := m.Comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *comment
	return &copied, nil
}

func (m *CommentRepository) GetByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range m.Comments {
		if comment.ArticleID == articleID {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) Delete(id uint) error {
	m.DeleteCalls++
	delete(m.Comments, id)
	return nil
}

func (m *CommentRepository) DeleteByAuthor(authorID uint) error {
	m.DeleteByAuthorCalls++
	for id, comment := range m.Comments {
		if comment.AuthorID == authorID {
			delete(m.Comments, id)
		}
	}
	return nil
}

type NotificationRepository struct {
	Notifications map[uint]*models.Notification
	NextID        uint

	CreateCalls int
	UpdateCalls int
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{Notifications: map[uint]*models.Notification{}, NextID: 1}
}

func (m *NotificationRepository) Create(notification *models.Notification) error {
	m.CreateCalls++
	notification.ID = m.NextID
	m.NextID++
	copied := *notification
	m.Notifications[notification.ID] = &copied
	return nil
}

func (m *NotificationRepository) GetByID(id uint) (*models.Notification, error) {
	notification, ok := m.Notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *notification
	return &copied, nil
}

func (m *NotificationRepository) GetByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	for _, notification := range m.Notifications {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	return notifications, nil
}

func (m *NotificationRepository) Update(notification *models.Notification) error {
	m.UpdateCalls++
	copied := *notification
	m.Notifications[notification.ID] = &copied
	return nil
}

type SubscriberRepository struct {
	Subscribers map[string]*models.Subscriber
	NextID      uint

	CreateCalls int
}

func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{Subscribers: map[string]*models.Subscriber{}, NextID: 1}
}

func (m *SubscriberRepository) Create(subscriber *models.Subscriber) error {
	m.CreateCalls++
	if _, exists := m.Subscribers[subscriber.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	subscriber.ID = m.NextID
	m.NextID++
	copied := *subscriber
	m.Subscribers[subscriber.Email] = &copied
	return nil
}

func (m *SubscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	subscriber, ok := m.Subscribers[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *subscriber
	return &copied, nil
}

func (m *SubscriberRepository) GetAllEmails() ([]string, error) {
	var emails []string
	for email := range m.Subscribers {
		emails = append(emails, email)
	}
	return emails, nil
}

type ContactRepository struct {
	Contacts []models.Contact

	CreateCalls int
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (m *ContactRepository) Create(contact *models.Contact) error {
	m.CreateCalls++
	contact.ID = uint(len(m.Contacts) + 1)
	m.Contacts = append(m.Contacts, *contact)
	return nil
}

func (m *ContactRepository) GetAll() ([]models.Contact, error) {
	return m.Contacts, nil
}
