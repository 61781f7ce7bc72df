package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/database/repository"
	"github.com/jjoa-app/diary-backend/internal/database/service"
)

// DiaryHandler handles HTTP requests for diary entries
type DiaryHandler struct {
	service service.DiaryService
	logger  *slog.Logger
}

// NewDiaryHandler creates a new diary handler
func NewDiaryHandler(service service.DiaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{
		service: service,
		logger:  logger,
	}
}

// ListQuery binds GET /diary query parameters
type ListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Type      string `form:"type" binding:"omitempty,oneof=memo diary"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Create handles POST /diary
func (h *DiaryHandler) Create(c *gin.Context) {
	var input service.CreateDiaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("⚠️ [DiaryHandler] Invalid create request", "error", err)
		ValidationError(c, "Title (1-100 chars), content (1-10000 chars), type and date are required", err.Error())
		return
	}

	entry, err := h.service.Create(mustUserID(c), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OKMessage(c, http.StatusCreated, "Diary entry saved", entry)
}

// List handles GET /diary
func (h *DiaryHandler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("⚠️ [DiaryHandler] Invalid list query", "error", err)
		ValidationError(c, "Invalid query parameters", err.Error())
		return
	}

	entries, pagination, err := h.service.List(mustUserID(c), service.ListOptions{
		Page:      query.Page,
		Limit:     query.Limit,
		Type:      query.Type,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, http.StatusOK, gin.H{
		"diaries":    entries,
		"pagination": pagination,
	})
}

// ListByMonth handles GET /diary/month/:year/:month
func (h *DiaryHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		ValidationError(c, "Year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		ValidationError(c, "Month must be a number", nil)
		return
	}

	entries, err := h.service.ListByMonth(mustUserID(c), year, month)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, http.StatusOK, entries)
}

// Get handles GET /diary/:id
func (h *DiaryHandler) Get(c *gin.Context) {
	id, ok := diaryID(c)
	if !ok {
		return
	}

	entry, err := h.service.Get(mustUserID(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, http.StatusOK, entry)
}

// Update handles PUT /diary/:id
func (h *DiaryHandler) Update(c *gin.Context) {
	id, ok := diaryID(c)
	if !ok {
		return
	}

	var input service.CreateDiaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("⚠️ [DiaryHandler] Invalid update request", "error", err)
		ValidationError(c, "Title (1-100 chars), content (1-10000 chars), type and date are required", err.Error())
		return
	}

	entry, err := h.service.Update(mustUserID(c), id, input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OKMessage(c, http.StatusOK, "Diary entry updated", entry)
}

// Delete handles DELETE /diary/:id (soft delete)
func (h *DiaryHandler) Delete(c *gin.Context) {
	id, ok := diaryID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(mustUserID(c), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diary entry deleted"})
}

func diaryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ValidationError(c, "Invalid diary id", nil)
		return 0, false
	}
	return uint(id), true
}

// mustUserID reads the authenticated user id set by the auth middleware
func mustUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// handleServiceError maps diary service errors to HTTP responses
func (h *DiaryHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDiaryNotFound):
		Error(c, http.StatusNotFound, "Diary entry not found")
	default:
		h.logger.Error("❌ [DiaryHandler] Internal server error", "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
