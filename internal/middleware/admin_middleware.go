package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/config"
	"github.com/jjoa-app/diary-backend/internal/handler"
)

// AdminMiddleware gates the admin routes behind a shared secret header
type AdminMiddleware struct {
	secretKey string
	logger    *slog.Logger
}

// NewAdminMiddleware creates a new admin middleware instance
func NewAdminMiddleware(cfg *config.Config, logger *slog.Logger) *AdminMiddleware {
	if cfg.AdminSecretKey == "" {
		logger.Warn("⚠️ [Middleware] ADMIN_SECRET_KEY not set, admin routes will reject all requests")
	}
	return &AdminMiddleware{
		secretKey: cfg.AdminSecretKey,
		logger:    logger,
	}
}

// RequireAdminKey rejects the request unless the Admin-Key header exactly
// matches the configured secret. An unconfigured secret rejects everything.
func (m *AdminMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminKey := c.GetHeader("Admin-Key")
		if m.secretKey == "" || adminKey == "" ||
			subtle.ConstantTimeCompare([]byte(adminKey), []byte(m.secretKey)) != 1 {
			m.logger.Warn("⚠️ [Middleware] Admin key mismatch", "path", c.FullPath())
			handler.Error(c, http.StatusForbidden, "Admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}
