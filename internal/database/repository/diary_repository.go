package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jjoa-app/diary-backend/internal/database/models"
)

// ListFilter narrows a user's diary listing. Zero values mean "no filter".
type ListFilter struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// AdminDiary is a diary entry annotated with its owner's identity, used only
// by the admin listing.
type AdminDiary struct {
	models.DiaryEntry
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DiaryRepository defines the interface for diary entry data operations.
//
// Soft delete is an explicit contract here: every method except the Admin*
// ones filters out rows with is_deleted = true. The admin listing reads the
// table raw, deleted rows included.
type DiaryRepository interface {
	Create(entry *models.DiaryEntry) error
	FindByID(userID, id uint) (*models.DiaryEntry, error)
	List(userID uint, filter ListFilter) ([]models.DiaryEntry, int64, error)
	FindByDateRange(userID uint, start, end time.Time) ([]models.DiaryEntry, error)
	Update(entry *models.DiaryEntry) error
	SoftDelete(userID, id uint) error
	CountAll() (int64, error)
	CountCreatedSince(t time.Time) (int64, error)
	ListRecentWithOwner(limit int) ([]AdminDiary, error)
}

type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository creates a new diary repository instance
func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) Create(entry *models.DiaryEntry) error {
	return r.db.Create(entry).Error
}

func (r *diaryRepository) FindByID(userID, id uint) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiaryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// scoped builds the base query for user-facing reads: owner-scoped and
// excluding soft-deleted rows.
func (r *diaryRepository) scoped(userID uint) *gorm.DB {
	return r.db.Model(&models.DiaryEntry{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)
}

func (r *diaryRepository) List(userID uint, filter ListFilter) ([]models.DiaryEntry, int64, error) {
	query := r.scoped(userID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.DiaryEntry
	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *diaryRepository) FindByDateRange(userID uint, start, end time.Time) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry
	err := r.scoped(userID).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// Update persists the entry and replaces its image set wholesale. Image rows
// from the previous version are removed first so a read after update returns
// exactly the entry's current images.
func (r *diaryRepository) Update(entry *models.DiaryEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diary_entry_id = ?", entry.ID).
			Delete(&models.DiaryImage{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(entry).Error
	})
}

func (r *diaryRepository) SoftDelete(userID, id uint) error {
	result := r.db.Model(&models.DiaryEntry{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiaryNotFound
	}
	return nil
}

// CountAll counts every entry, soft-deleted included (admin dashboard
// semantics: the collection is read raw).
func (r *diaryRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.DiaryEntry{}).Count(&count).Error
	return count, err
}

func (r *diaryRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.DiaryEntry{}).
		Where("created_at >= ?", t).
		Count(&count).Error
	return count, err
}

// ListRecentWithOwner returns the most recent entries joined with their
// owner's username and email. Deliberately does not apply the soft-delete
// filter.
func (r *diaryRepository) ListRecentWithOwner(limit int) ([]AdminDiary, error) {
	var diaries []AdminDiary
	err := r.db.Model(&models.DiaryEntry{}).
		Select("diary_entries.*, users.username AS username, users.email AS email").
		Joins("JOIN users ON users.id = diary_entries.user_id").
		Order("diary_entries.created_at DESC").
		Limit(limit).
		Find(&diaries).Error
	return diaries, err
}

// Repository errors
var (
	ErrDiaryNotFound = errors.New("diary entry not found")
)
