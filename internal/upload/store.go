package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jjoa-app/diary-backend/internal/config"
)

// allowed image formats, keyed by lowercase extension
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// StoredFile describes a file written to the uploads directory. Association
// with a diary entry happens later, through entry create/update.
type StoredFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

// Store validates image uploads and writes them to local disk
type Store struct {
	dir     string
	maxSize int64
	logger  *slog.Logger
}

// NewStore creates the uploads directory if needed and returns a store
func NewStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxFileSize,
		logger:  logger,
	}, nil
}

// Save validates and persists one uploaded image. The stored name combines a
// millisecond timestamp with a random suffix so concurrent uploads of the
// same file cannot collide.
func (s *Store) Save(file *multipart.FileHeader) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: extension %q", ErrInvalidFile, ext)
	}

	// The declared content type must match the allowlist too; a missing
	// header is rejected like any other non-image type
	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if !allowedMimeTypes[contentType] {
		return nil, fmt.Errorf("%w: content type %q", ErrInvalidFile, contentType)
	}

	if file.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, file.Size, s.maxSize)
	}

	filename := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), shortSuffix(), ext)
	destPath := filepath.Join(s.dir, filename)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(destPath)
		return nil, err
	}

	s.logger.Info("🖼️ [Upload] Image stored", "filename", filename, "size", written)

	return &StoredFile{
		Filename:     filename,
		OriginalName: file.Filename,
		Path:         destPath,
		Size:         written,
	}, nil
}

func shortSuffix() string {
	return strings.Split(uuid.NewString(), "-")[0]
}

// Store errors
var (
	ErrInvalidFile  = errors.New("only jpeg, jpg, png and gif images are allowed")
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
)
