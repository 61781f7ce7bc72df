package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/upload"
)

// UploadHandler handles image attachment uploads
type UploadHandler struct {
	store  *upload.Store
	logger *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store *upload.Store, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// UploadImage handles POST /upload/image. The stored file is not tied to any
// diary entry; the client references it in a later entry create or update.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.logger.Warn("⚠️ [UploadHandler] Missing image file", "error", err)
		Error(c, http.StatusBadRequest, "An image file is required")
		return
	}

	stored, err := h.store.Save(file)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrInvalidFile), errors.Is(err, upload.ErrFileTooLarge):
			h.logger.Warn("⚠️ [UploadHandler] Rejected upload", "filename", file.Filename, "error", err)
			Error(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("❌ [UploadHandler] Failed to store file", "error", err)
			Error(c, http.StatusInternalServerError, "Failed to store file")
		}
		return
	}

	OK(c, http.StatusOK, stored)
}
