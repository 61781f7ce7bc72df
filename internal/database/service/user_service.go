package service

import (
	"fmt"
	"log/slog"

	"github.com/jjoa-app/diary-backend/internal/database/models"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
)

// SettingsInput carries a settings update. The diary password is never set
// through this path; SetDiaryPassword owns that so the stored hash cannot be
// overwritten with arbitrary client data.
type SettingsInput struct {
	Theme         string `json:"theme" binding:"required"`
	Notifications struct {
		Enabled   bool `json:"enabled"`
		Reminders bool `json:"reminders"`
		Email     bool `json:"email"`
	} `json:"notifications"`
	Privacy struct {
		RequirePassword bool `json:"requirePassword"`
	} `json:"privacy"`
}

// UserService defines the interface for profile and settings business logic
type UserService interface {
	GetProfile(userID uint) (*models.User, error)
	UpdateSettings(userID uint, input SettingsInput) (*models.User, error)
	SetDiaryPassword(userID uint, password string) (*models.User, error)
	VerifyDiaryPassword(userID uint, password string) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) UpdateSettings(userID uint, input SettingsInput) (*models.User, error) {
	if !models.IsValidTheme(input.Theme) {
		return nil, fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, input.Theme)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Settings.Theme = input.Theme
	user.Settings.Notifications = models.NotificationSettings{
		Enabled:   input.Notifications.Enabled,
		Reminders: input.Notifications.Reminders,
		Email:     input.Notifications.Email,
	}
	user.Settings.Privacy.RequirePassword = input.Privacy.RequirePassword

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update settings", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Settings updated", "user_id", userID, "theme", input.Theme)
	return user, nil
}

func (s *userService) SetDiaryPassword(userID uint, password string) (*models.User, error) {
	if len(password) < 4 {
		return nil, fmt.Errorf("%w: diary password must be at least 4 characters", ErrInvalidInput)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if err := user.SetDiaryPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to set diary password", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Diary password set", "user_id", userID)
	return user, nil
}

func (s *userService) VerifyDiaryPassword(userID uint, password string) (bool, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return false, err
	}
	return user.CheckDiaryPassword(password), nil
}
