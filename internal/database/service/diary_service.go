package service

import (
	"fmt"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"github.com/jjoa-app/diary-backend/internal/database/models"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	maxTagLength     = 20
	minYear          = 2020
	maxYear          = 2030
)

// DiaryImageInput describes an already-uploaded attachment to associate with
// an entry
type DiaryImageInput struct {
	Filename     string `json:"filename" binding:"required"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

// ReminderInput configures the optional reminder on an entry
type ReminderInput struct {
	Enabled       bool    `json:"enabled"`
	Time          *string `json:"time"`
	BeforeMinutes *int    `json:"beforeMinutes"`
	Repeat        *string `json:"repeat"`
}

// CreateDiaryInput carries a validated create/update request. Date is the
// user-assigned diary date in ISO 8601 form, distinct from the row's creation
// timestamp.
type CreateDiaryInput struct {
	Title     string            `json:"title" binding:"required,min=1,max=100"`
	Content   string            `json:"content" binding:"required,min=1,max=10000"`
	Type      string            `json:"type" binding:"required"`
	Emotion   string            `json:"emotion"`
	Date      string            `json:"date" binding:"required"`
	Images    []DiaryImageInput `json:"images"`
	Tags      []string          `json:"tags"`
	Weather   *models.Weather   `json:"weather"`
	Location  *models.Location  `json:"location"`
	Reminder  *ReminderInput    `json:"reminder"`
	IsPrivate bool              `json:"isPrivate"`
}

// ListOptions narrows and paginates a diary listing
type ListOptions struct {
	Page      int
	Limit     int
	Type      string
	StartDate string
	EndDate   string
}

// Pagination describes one page of a listing
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// DiaryService defines the interface for diary business logic
type DiaryService interface {
	Create(userID uint, input CreateDiaryInput) (*models.DiaryEntry, error)
	Get(userID, id uint) (*models.DiaryEntry, error)
	List(userID uint, opts ListOptions) ([]models.DiaryEntry, *Pagination, error)
	ListByMonth(userID uint, year, month int) ([]models.DiaryEntry, error)
	Update(userID, id uint, input CreateDiaryInput) (*models.DiaryEntry, error)
	Delete(userID, id uint) error
}

type diaryService struct {
	diaryRepo repository.DiaryRepository
	logger    *slog.Logger
}

// NewDiaryService creates a new diary service instance
func NewDiaryService(diaryRepo repository.DiaryRepository, logger *slog.Logger) DiaryService {
	return &diaryService{
		diaryRepo: diaryRepo,
		logger:    logger,
	}
}

func (s *diaryService) Create(userID uint, input CreateDiaryInput) (*models.DiaryEntry, error) {
	entry, err := s.buildEntry(userID, input)
	if err != nil {
		return nil, err
	}

	if err := s.diaryRepo.Create(entry); err != nil {
		s.logger.Error("❌ [DiaryService] Failed to create entry", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [DiaryService] Entry created", "user_id", userID, "diary_id", entry.ID, "type", entry.Type)
	return entry, nil
}

func (s *diaryService) Get(userID, id uint) (*models.DiaryEntry, error) {
	return s.diaryRepo.FindByID(userID, id)
}

func (s *diaryService) List(userID uint, opts ListOptions) ([]models.DiaryEntry, *Pagination, error) {
	page := opts.Page
	if page == 0 {
		page = 1
	}
	limit := opts.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	if page < 1 || limit < 1 || limit > maxPageLimit {
		return nil, nil, fmt.Errorf("%w: page must be >= 1 and limit between 1 and %d", ErrInvalidInput, maxPageLimit)
	}
	if opts.Type != "" && !models.IsValidType(opts.Type) {
		return nil, nil, fmt.Errorf("%w: type must be memo or diary", ErrInvalidInput)
	}

	filter := repository.ListFilter{
		Type:   opts.Type,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if opts.StartDate != "" {
		start, err := parseDate(opts.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid startDate", ErrInvalidInput)
		}
		filter.StartDate = &start
	}
	if opts.EndDate != "" {
		end, err := parseDate(opts.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid endDate", ErrInvalidInput)
		}
		filter.EndDate = &end
	}

	entries, total, err := s.diaryRepo.List(userID, filter)
	if err != nil {
		s.logger.Error("❌ [DiaryService] Failed to list entries", "user_id", userID, "error", err)
		return nil, nil, err
	}

	pagination := &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return entries, pagination, nil
}

func (s *diaryService) ListByMonth(userID uint, year, month int) ([]models.DiaryEntry, error) {
	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	// First instant of the month through the last second of its last day,
	// inclusive on both ends. Day 0 of the next month normalizes to the last
	// day of this one.
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)

	return s.diaryRepo.FindByDateRange(userID, start, end)
}

func (s *diaryService) Update(userID, id uint, input CreateDiaryInput) (*models.DiaryEntry, error) {
	existing, err := s.diaryRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildEntry(userID, input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	for i := range updated.Images {
		updated.Images[i].DiaryEntryID = existing.ID
	}

	// Concurrent edits are last-write-wins
	if err := s.diaryRepo.Update(updated); err != nil {
		s.logger.Error("❌ [DiaryService] Failed to update entry", "user_id", userID, "diary_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [DiaryService] Entry updated", "user_id", userID, "diary_id", id)
	return updated, nil
}

func (s *diaryService) Delete(userID, id uint) error {
	if err := s.diaryRepo.SoftDelete(userID, id); err != nil {
		return err
	}
	s.logger.Info("🗑️ [DiaryService] Entry soft-deleted", "user_id", userID, "diary_id", id)
	return nil
}

// buildEntry validates field constraints and assembles the model. Only schema
// level checks are done; there is no cross-field validation (a reminder time
// is not checked against the diary date).
func (s *diaryService) buildEntry(userID uint, input CreateDiaryInput) (*models.DiaryEntry, error) {
	if !models.IsValidType(input.Type) {
		return nil, fmt.Errorf("%w: type must be memo or diary", ErrInvalidInput)
	}

	emotion := input.Emotion
	if emotion == "" {
		emotion = "neutral"
	}
	if !models.IsValidEmotion(emotion) {
		return nil, fmt.Errorf("%w: unknown emotion %q", ErrInvalidInput, input.Emotion)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	for _, tag := range input.Tags {
		// Length limits count characters, not bytes, like the binding
		// validator does for title and content
		if n := utf8.RuneCountInString(tag); n == 0 || n > maxTagLength {
			return nil, fmt.Errorf("%w: tags must be 1-%d characters", ErrInvalidInput, maxTagLength)
		}
	}

	entry := &models.DiaryEntry{
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		Type:      input.Type,
		Emotion:   emotion,
		Date:      date,
		Tags:      input.Tags,
		Weather:   input.Weather,
		Location:  input.Location,
		IsPrivate: input.IsPrivate,
		Reminder:  models.Reminder{BeforeMinutes: 10, Repeat: "none"},
	}

	if input.Reminder != nil {
		entry.Reminder.Enabled = input.Reminder.Enabled
		if input.Reminder.BeforeMinutes != nil {
			entry.Reminder.BeforeMinutes = *input.Reminder.BeforeMinutes
		}
		if input.Reminder.Repeat != nil {
			if !models.IsValidRepeat(*input.Reminder.Repeat) {
				return nil, fmt.Errorf("%w: unknown reminder repeat %q", ErrInvalidInput, *input.Reminder.Repeat)
			}
			entry.Reminder.Repeat = *input.Reminder.Repeat
		}
		if input.Reminder.Time != nil {
			t, err := parseDate(*input.Reminder.Time)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid reminder time", ErrInvalidInput)
			}
			entry.Reminder.Time = &t
		}
	}

	now := time.Now()
	for i, img := range input.Images {
		entry.Images = append(entry.Images, models.DiaryImage{
			Position:     i,
			Filename:     img.Filename,
			OriginalName: img.OriginalName,
			Path:         img.Path,
			Size:         img.Size,
			UploadDate:   now,
		})
	}

	return entry, nil
}

// parseDate accepts the ISO 8601 shapes clients actually send
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}
