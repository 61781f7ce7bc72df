package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/database/service"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Request DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SocialLoginRequest struct {
	Provider string  `json:"provider" binding:"required,oneof=google kakao"`
	SocialID string  `json:"socialId" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Username string  `json:"username" binding:"required"`
	Avatar   *string `json:"avatar"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [AuthHandler] Invalid registration request", "error", err)
		ValidationError(c, "Username (3-20 chars), email and password (min 6 chars) are required", err.Error())
		return
	}

	user, token, err := h.service.Register(req.Username, strings.ToLower(req.Email), req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OKMessage(c, http.StatusCreated, "Registration complete", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [AuthHandler] Invalid login request", "error", err)
		ValidationError(c, "Email and password are required", err.Error())
		return
	}

	user, token, err := h.service.Login(strings.ToLower(req.Email), req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OKMessage(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// SocialLogin handles POST /auth/social-login
func (h *AuthHandler) SocialLogin(c *gin.Context) {
	var req SocialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [AuthHandler] Invalid social login request", "error", err)
		ValidationError(c, "Provider, socialId, email and username are required", err.Error())
		return
	}

	user, token, err := h.service.SocialLogin(service.SocialLoginInput{
		Provider: req.Provider,
		SocialID: req.SocialID,
		Email:    strings.ToLower(req.Email),
		Username: req.Username,
		Avatar:   req.Avatar,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OKMessage(c, http.StatusOK, "Social login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// handleServiceError maps auth service errors to HTTP responses
func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		Error(c, http.StatusConflict, "Email or username already in use")
	case errors.Is(err, service.ErrInvalidCredentials):
		Error(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrInvalidInput):
		Error(c, http.StatusBadRequest, "Invalid request")
	default:
		h.logger.Error("❌ [AuthHandler] Internal server error", "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
