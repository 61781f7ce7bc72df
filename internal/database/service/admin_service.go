package service

import (
	"log/slog"
	"time"

	"github.com/jjoa-app/diary-backend/internal/database/models"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
)

const adminDiaryLimit = 100

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	TotalUsers   int64  `json:"totalUsers"`
	TotalDiaries int64  `json:"totalDiaries"`
	TodayDiaries int64  `json:"todayDiaries"`
	ServerStatus string `json:"serverStatus"`
}

// AdminService defines the interface for admin reporting. All of its reads
// hit the tables raw: counts and the diary listing include soft-deleted rows.
type AdminService interface {
	DashboardStats() (*DashboardStats, error)
	ListUsers() ([]models.User, error)
	ListDiaries() ([]repository.AdminDiary, error)
}

type adminService struct {
	userRepo  repository.UserRepository
	diaryRepo repository.DiaryRepository
	logger    *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(userRepo repository.UserRepository, diaryRepo repository.DiaryRepository, logger *slog.Logger) AdminService {
	return &adminService{
		userRepo:  userRepo,
		diaryRepo: diaryRepo,
		logger:    logger,
	}
}

func (s *adminService) DashboardStats() (*DashboardStats, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}

	totalDiaries, err := s.diaryRepo.CountAll()
	if err != nil {
		return nil, err
	}

	// "Today" means since local midnight on the server
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayDiaries, err := s.diaryRepo.CountCreatedSince(midnight)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:   totalUsers,
		TotalDiaries: totalDiaries,
		TodayDiaries: todayDiaries,
		ServerStatus: "healthy",
	}, nil
}

func (s *adminService) ListUsers() ([]models.User, error) {
	return s.userRepo.ListAll()
}

func (s *adminService) ListDiaries() ([]repository.AdminDiary, error) {
	return s.diaryRepo.ListRecentWithOwner(adminDiaryLimit)
}
