package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Social login providers supported by the auth flow
const (
	ProviderGoogle = "google"
	ProviderKakao  = "kakao"
)

// bcryptCost matches the salt rounds the mobile clients were provisioned against
const bcryptCost = 12

// ValidThemes lists the selectable UI themes
var ValidThemes = []string{"blue", "green", "purple", "orange", "teal"}

// NotificationSettings holds per-user notification toggles
type NotificationSettings struct {
	Enabled   bool `gorm:"not null;default:true" json:"enabled"`
	Reminders bool `gorm:"not null;default:true" json:"reminders"`
	Email     bool `gorm:"not null;default:false" json:"email"`
}

// PrivacySettings holds the optional diary lock. DiaryPassword stores a bcrypt
// hash and is never serialized.
type PrivacySettings struct {
	DiaryPassword   *string `json:"-"`
	RequirePassword bool    `gorm:"not null;default:false" json:"requirePassword"`
}

// UserSettings is embedded into User under the settings_ column prefix
type UserSettings struct {
	Theme         string               `gorm:"not null;default:blue" json:"theme"`
	Notifications NotificationSettings `gorm:"embedded;embeddedPrefix:notifications_" json:"notifications"`
	Privacy       PrivacySettings      `gorm:"embedded;embeddedPrefix:privacy_" json:"privacy"`
}

// User represents a diary account. Password is empty for social-only accounts;
// SocialProvider/SocialID are nil for password accounts.
type User struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	Username       string       `gorm:"uniqueIndex;not null" json:"username"`
	Email          string       `gorm:"uniqueIndex;not null" json:"email"`
	Password       string       `json:"-"`
	Avatar         *string      `json:"avatar"`
	SocialProvider *string      `json:"socialProvider"`
	SocialID       *string      `json:"socialId"`
	Settings       UserSettings `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`
	IsActive       bool         `gorm:"not null;default:true" json:"isActive"`
	LastLogin      *time.Time   `json:"lastLogin"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// DefaultSettings returns the settings assigned to a freshly created account
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme: "blue",
		Notifications: NotificationSettings{
			Enabled:   true,
			Reminders: true,
			Email:     false,
		},
	}
}

// SetPassword hashes and stores the login password
func (u *User) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies a login password against the stored hash
func (u *User) CheckPassword(plaintext string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
}

// SetDiaryPassword hashes and stores the diary lock password and turns the
// require-password flag on
func (u *User) SetDiaryPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	hash := string(hashed)
	u.Settings.Privacy.DiaryPassword = &hash
	u.Settings.Privacy.RequirePassword = true
	return nil
}

// CheckDiaryPassword verifies the diary lock password. Returns false when no
// diary password has been set.
func (u *User) CheckDiaryPassword(plaintext string) bool {
	if u.Settings.Privacy.DiaryPassword == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.Settings.Privacy.DiaryPassword), []byte(plaintext)) == nil
}

// IsValidTheme reports whether the given theme is selectable
func IsValidTheme(theme string) bool {
	for _, t := range ValidThemes {
		if t == theme {
			return true
		}
	}
	return false
}

// IsValidProvider reports whether the given social provider is supported
func IsValidProvider(provider string) bool {
	return provider == ProviderGoogle || provider == ProviderKakao
}
