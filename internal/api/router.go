package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jjoa-app/diary-backend/internal/handler"
	"github.com/jjoa-app/diary-backend/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	diaryHandler *handler.DiaryHandler,
	uploadHandler *handler.UploadHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	loginLimiter middleware.LoginLimiter,
	uploadDir string,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Stored upload paths resolve against this mount
	r.Static("/uploads", uploadDir)

	// Public routes
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (public, throttled)
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.Limit(loginLimiter, logger))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/social-login", authHandler.SocialLogin)
	}

	// Protected routes
	api := r.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/diary", diaryHandler.List)
		api.POST("/diary", diaryHandler.Create)
		api.GET("/diary/month/:year/:month", diaryHandler.ListByMonth)
		api.GET("/diary/:id", diaryHandler.Get)
		api.PUT("/diary/:id", diaryHandler.Update)
		api.DELETE("/diary/:id", diaryHandler.Delete)

		api.POST("/upload/image", uploadHandler.UploadImage)

		api.GET("/user/profile", userHandler.GetProfile)
		api.PUT("/user/settings", userHandler.UpdateSettings)
		api.POST("/user/diary-password", userHandler.SetDiaryPassword)
		api.POST("/user/diary-password/verify", userHandler.VerifyDiaryPassword)
	}

	// Admin routes (shared secret header, deliberately outside the limiter)
	admin := r.Group("/api/admin")
	admin.GET("/", adminHandler.Console)
	admin.Use(adminMiddleware.RequireAdminKey())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/diaries", adminHandler.ListDiaries)
	}

	return r
}
