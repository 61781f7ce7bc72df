package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jjoa-app/diary-backend/internal/database/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindActiveByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindBySocial(provider, socialID string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Update(user *models.User) error
	CountAll() (int64, error)
	ListAll() ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	return r.findOne("email = ?", email)
}

func (r *userRepository) FindActiveByEmail(email string) (*models.User, error) {
	return r.findOne("email = ? AND is_active = ?", email, true)
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	return r.findOne("username = ?", username)
}

func (r *userRepository) FindBySocial(provider, socialID string) (*models.User, error) {
	return r.findOne("social_provider = ? AND social_id = ?", provider, socialID)
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) findOne(query string, args ...interface{}) (*models.User, error) {
	var user models.User
	err := r.db.Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// ListAll returns every user newest-first. Callers rely on JSON tags to keep
// credential fields out of responses.
func (r *userRepository) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Repository errors
var (
	ErrUserNotFound = errors.New("user not found")
)
