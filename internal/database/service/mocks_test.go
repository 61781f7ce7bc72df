package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jjoa-app/diary-backend/internal/config"
	"github.com/jjoa-app/diary-backend/internal/database/models"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		TokenExpiration: 30 * 24 * 3600,
	}
}

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindBySocial(provider, socialID string) (*models.User, error) {
	args := m.Called(provider, socialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockDiaryRepository mocks repository.DiaryRepository
type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) Create(entry *models.DiaryEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockDiaryRepository) FindByID(userID, id uint) (*models.DiaryEntry, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiaryEntry), args.Error(1)
}

func (m *MockDiaryRepository) List(userID uint, filter repository.ListFilter) ([]models.DiaryEntry, int64, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.DiaryEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockDiaryRepository) FindByDateRange(userID uint, start, end time.Time) ([]models.DiaryEntry, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DiaryEntry), args.Error(1)
}

func (m *MockDiaryRepository) Update(entry *models.DiaryEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockDiaryRepository) SoftDelete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

func (m *MockDiaryRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiaryRepository) CountCreatedSince(t time.Time) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiaryRepository) ListRecentWithOwner(limit int) ([]repository.AdminDiary, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AdminDiary), args.Error(1)
}
