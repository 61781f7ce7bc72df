package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jjoa-app/diary-backend/internal/config"
)

func adminTestRouter(secretKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewAdminMiddleware(&config.Config{AdminSecretKey: secretKey}, logger)

	r := gin.New()
	r.GET("/admin/dashboard", m.RequireAdminKey(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAdminMiddleware_RequireAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		serverKey  string
		headerKey  *string
		wantStatus int
	}{
		{"exact match", "s3cret", strPtr("s3cret"), http.StatusOK},
		{"missing header", "s3cret", nil, http.StatusForbidden},
		{"empty header", "s3cret", strPtr(""), http.StatusForbidden},
		{"wrong key", "s3cret", strPtr("guess"), http.StatusForbidden},
		{"prefix is not a match", "s3cret", strPtr("s3cr"), http.StatusForbidden},
		{"unconfigured server key rejects everything", "", strPtr(""), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := adminTestRouter(tt.serverKey)

			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			if tt.headerKey != nil {
				req.Header.Set("Admin-Key", *tt.headerKey)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
