package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jjoa-app/diary-backend/internal/database/models"
)

func TestUserService_UpdateSettings(t *testing.T) {
	t.Run("replaces settings but keeps the diary password hash", func(t *testing.T) {
		user := &models.User{ID: 1, Settings: models.DefaultSettings(), IsActive: true}
		require.NoError(t, user.SetDiaryPassword("1234"))
		storedHash := *user.Settings.Privacy.DiaryPassword

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", uint(1)).Return(user, nil)
		userRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		svc := NewUserService(userRepo, testLogger())

		input := SettingsInput{Theme: "purple"}
		input.Notifications.Enabled = false
		input.Notifications.Email = true
		input.Privacy.RequirePassword = false

		updated, err := svc.UpdateSettings(1, input)
		require.NoError(t, err)
		assert.Equal(t, "purple", updated.Settings.Theme)
		assert.False(t, updated.Settings.Notifications.Enabled)
		assert.True(t, updated.Settings.Notifications.Email)
		require.NotNil(t, updated.Settings.Privacy.DiaryPassword)
		assert.Equal(t, storedHash, *updated.Settings.Privacy.DiaryPassword)
	})

	t.Run("rejects unknown themes", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), testLogger())
		_, err := svc.UpdateSettings(1, SettingsInput{Theme: "magenta"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUserService_DiaryPassword(t *testing.T) {
	t.Run("set then verify round-trips", func(t *testing.T) {
		user := &models.User{ID: 1, Settings: models.DefaultSettings(), IsActive: true}

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", uint(1)).Return(user, nil)
		userRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		svc := NewUserService(userRepo, testLogger())

		updated, err := svc.SetDiaryPassword(1, "open-sesame")
		require.NoError(t, err)
		assert.True(t, updated.Settings.Privacy.RequirePassword)
		require.NotNil(t, updated.Settings.Privacy.DiaryPassword)
		// Never the plaintext
		assert.NotEqual(t, "open-sesame", *updated.Settings.Privacy.DiaryPassword)

		valid, err := svc.VerifyDiaryPassword(1, "open-sesame")
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = svc.VerifyDiaryPassword(1, "wrong")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("verify without a password set", func(t *testing.T) {
		user := &models.User{ID: 1, Settings: models.DefaultSettings(), IsActive: true}
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", uint(1)).Return(user, nil)

		svc := NewUserService(userRepo, testLogger())
		valid, err := svc.VerifyDiaryPassword(1, "anything")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), testLogger())
		_, err := svc.SetDiaryPassword(1, "abc")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
