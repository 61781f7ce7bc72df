package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/database/repository"
	"github.com/jjoa-app/diary-backend/internal/database/service"
)

// UserHandler handles profile and settings requests
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type DiaryPasswordRequest struct {
	Password string `json:"password" binding:"required,min=4"`
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(mustUserID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, http.StatusOK, user)
}

// UpdateSettings handles PUT /user/settings
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var input service.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid settings request", "error", err)
		ValidationError(c, "A theme is required", err.Error())
		return
	}

	user, err := h.service.UpdateSettings(mustUserID(c), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, http.StatusOK, user)
}

// SetDiaryPassword handles POST /user/diary-password
func (h *UserHandler) SetDiaryPassword(c *gin.Context) {
	var req DiaryPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, "A password of at least 4 characters is required", err.Error())
		return
	}

	user, err := h.service.SetDiaryPassword(mustUserID(c), req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OKMessage(c, http.StatusOK, "Diary password set", user)
}

// VerifyDiaryPassword handles POST /user/diary-password/verify
func (h *UserHandler) VerifyDiaryPassword(c *gin.Context) {
	var req DiaryPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, "A password is required", err.Error())
		return
	}

	valid, err := h.service.VerifyDiaryPassword(mustUserID(c), req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, http.StatusOK, gin.H{"valid": valid})
}

// handleServiceError maps user service errors to HTTP responses
func (h *UserHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrUserNotFound):
		Error(c, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("❌ [UserHandler] Internal server error", "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
