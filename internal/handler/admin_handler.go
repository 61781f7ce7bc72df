package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/database/service"
)

// AdminHandler serves the shared-secret-gated reporting endpoints
type AdminHandler struct {
	service service.AdminService
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats()
	if err != nil {
		h.logger.Error("❌ [AdminHandler] Failed to load dashboard stats", "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(c, http.StatusOK, stats)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		h.logger.Error("❌ [AdminHandler] Failed to list users", "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(c, http.StatusOK, users)
}

// ListDiaries handles GET /admin/diaries
func (h *AdminHandler) ListDiaries(c *gin.Context) {
	diaries, err := h.service.ListDiaries()
	if err != nil {
		h.logger.Error("❌ [AdminHandler] Failed to list diaries", "error", err)
		Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(c, http.StatusOK, diaries)
}

// Console handles GET /admin/ and serves the static admin page
func (h *AdminHandler) Console(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(adminConsoleHTML))
}
