package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jjoa-app/diary-backend/internal/config"
	"github.com/jjoa-app/diary-backend/internal/database/models"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(username, email, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	SocialLogin(input SocialLoginInput) (*models.User, string, error)
	ValidateToken(tokenString string) (*models.User, error)
}

// SocialLoginInput carries the identity asserted by a social provider
type SocialLoginInput struct {
	Provider string
	SocialID string
	Email    string
	Username string
	Avatar   *string
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  time.Duration(cfg.TokenExpiration) * time.Second,
		logger:    logger,
	}
}

func (s *authService) Register(username, email, password string) (*models.User, string, error) {
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email, "username", username)

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, "", err
	}
	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	// Check if username already exists
	existingUser, err = s.userRepo.FindByUsername(username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error checking username", "error", err)
		return nil, "", err
	}
	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Username already taken", "username", username)
		return nil, "", ErrUserAlreadyExists
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Settings: models.DefaultSettings(),
		IsActive: true,
	}
	if err := user.SetPassword(password); err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, "", err
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate token", "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	// Unknown email and wrong password map to the same error on purpose, so
	// responses cannot be used to enumerate accounts.
	user, err := s.userRepo.FindActiveByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, "", err
	}

	if !user.CheckPassword(password) {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to update last login", "error", err)
		return nil, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate token", "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) SocialLogin(input SocialLoginInput) (*models.User, string, error) {
	s.logger.Info("🔐 [AuthService] Social login attempt", "provider", input.Provider, "email", input.Email)

	if !models.IsValidProvider(input.Provider) {
		return nil, "", ErrInvalidInput
	}

	user, err := s.userRepo.FindBySocial(input.Provider, input.SocialID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}
	if user == nil {
		// Fall back to matching by email. An existing password account with
		// the same email gets the social identity linked onto it.
		user, err = s.userRepo.FindByEmail(input.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", err
		}
	}

	now := time.Now()

	if user != nil {
		if user.SocialProvider == nil {
			user.SocialProvider = &input.Provider
			user.SocialID = &input.SocialID
		}
		if input.Avatar != nil {
			user.Avatar = input.Avatar
		}
		user.LastLogin = &now
		if err := s.userRepo.Update(user); err != nil {
			s.logger.Error("❌ [AuthService] Failed to update social user", "error", err)
			return nil, "", err
		}
	} else {
		user = &models.User{
			Username:       input.Username,
			Email:          input.Email,
			SocialProvider: &input.Provider,
			SocialID:       &input.SocialID,
			Avatar:         input.Avatar,
			Settings:       models.DefaultSettings(),
			IsActive:       true,
			LastLogin:      &now,
		}
		if err := s.userRepo.Create(user); err != nil {
			s.logger.Error("❌ [AuthService] Failed to create social user", "error", err)
			return nil, "", err
		}
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] Social login successful", "user_id", user.ID, "provider", input.Provider)
	return user, token, nil
}

// ValidateToken parses a bearer token and loads the account it names. Inactive
// or vanished accounts are rejected the same way malformed tokens are.
func (s *authService) ValidateToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(uint(userID))
	if err != nil || !user.IsActive {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (s *authService) generateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// Service errors
var (
	ErrUserAlreadyExists  = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidInput       = errors.New("invalid input")
)
