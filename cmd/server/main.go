package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jjoa-app/diary-backend/internal/api"
	"github.com/jjoa-app/diary-backend/internal/config"
	"github.com/jjoa-app/diary-backend/internal/database"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
	"github.com/jjoa-app/diary-backend/internal/database/service"
	"github.com/jjoa-app/diary-backend/internal/handler"
	"github.com/jjoa-app/diary-backend/internal/logger"
	"github.com/jjoa-app/diary-backend/internal/middleware"
	"github.com/jjoa-app/diary-backend/internal/upload"
)

func main() {
	// 1. Config
	_ = godotenv.Load(".env")
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Diary] Starting server...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	diaryService := service.NewDiaryService(diaryRepo, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	adminService := service.NewAdminService(userRepo, diaryRepo, appLogger)

	// 6. Initialize Upload Store
	uploadStore, err := upload.NewStore(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 7. Initialize Login Limiter
	loginLimiter, err := middleware.NewLoginLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op login limiter", "error", err)
		loginLimiter = middleware.NewNoOpLoginLimiter(appLogger)
	}
	defer loginLimiter.Close()

	// 8. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	diaryHandler := handler.NewDiaryHandler(diaryService, appLogger)
	uploadHandler := handler.NewUploadHandler(uploadStore, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)
	adminMiddleware := middleware.NewAdminMiddleware(cfg, appLogger)

	r := api.SetupRouter(
		authHandler,
		diaryHandler,
		uploadHandler,
		userHandler,
		adminHandler,
		authMiddleware,
		adminMiddleware,
		loginLimiter,
		cfg.UploadDir,
		appLogger,
	)

	// 9. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Diary] HTTP Server running...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
