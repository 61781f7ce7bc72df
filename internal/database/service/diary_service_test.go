package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jjoa-app/diary-backend/internal/database/models"
	"github.com/jjoa-app/diary-backend/internal/database/repository"
)

func validInput() CreateDiaryInput {
	return CreateDiaryInput{
		Title:   "A day",
		Content: "It went fine.",
		Type:    models.TypeDiary,
		Emotion: "good",
		Date:    "2024-02-29",
	}
}

func TestDiaryService_Create(t *testing.T) {
	t.Run("success with metadata", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("Create", mock.AnythingOfType("*models.DiaryEntry")).Run(func(args mock.Arguments) {
			entry := args.Get(0).(*models.DiaryEntry)
			entry.ID = 1
		}).Return(nil)

		repeat := "weekly"
		input := validInput()
		input.Tags = []string{"walk", "rain"}
		input.Reminder = &ReminderInput{Enabled: true, Repeat: &repeat}
		input.Images = []DiaryImageInput{{Filename: "image-1.jpg", OriginalName: "me.jpg", Path: "uploads/image-1.jpg", Size: 42}}

		svc := NewDiaryService(diaryRepo, testLogger())
		entry, err := svc.Create(9, input)

		require.NoError(t, err)
		assert.Equal(t, uint(9), entry.UserID)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), entry.Date)
		assert.Equal(t, "weekly", entry.Reminder.Repeat)
		assert.Equal(t, 10, entry.Reminder.BeforeMinutes)
		require.Len(t, entry.Images, 1)
		assert.Equal(t, 0, entry.Images[0].Position)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateDiaryInput)
		}{
			{"bad type", func(in *CreateDiaryInput) { in.Type = "note" }},
			{"bad emotion", func(in *CreateDiaryInput) { in.Emotion = "ecstatic" }},
			{"bad date", func(in *CreateDiaryInput) { in.Date = "yesterday" }},
			{"tag too long", func(in *CreateDiaryInput) { in.Tags = []string{"this tag is far too long for us"} }},
			{"empty tag", func(in *CreateDiaryInput) { in.Tags = []string{""} }},
			{"bad repeat", func(in *CreateDiaryInput) {
				repeat := "hourly"
				in.Reminder = &ReminderInput{Repeat: &repeat}
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validInput()
				tt.mutate(&input)

				svc := NewDiaryService(new(MockDiaryRepository), testLogger())
				_, err := svc.Create(9, input)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("tag length counts characters not bytes", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("Create", mock.AnythingOfType("*models.DiaryEntry")).Return(nil)

		// 9 Hangul characters, 27 bytes
		input := validInput()
		input.Tags = []string{"서울여행기록일기장"}

		svc := NewDiaryService(diaryRepo, testLogger())
		_, err := svc.Create(9, input)
		require.NoError(t, err)

		// 21 characters is over the limit regardless of encoding
		input.Tags = []string{"가나다라마바사아자차카타파하가나다라마바사"}
		_, err = svc.Create(9, input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("emotion defaults to neutral", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("Create", mock.AnythingOfType("*models.DiaryEntry")).Return(nil)

		input := validInput()
		input.Emotion = ""

		svc := NewDiaryService(diaryRepo, testLogger())
		entry, err := svc.Create(9, input)
		require.NoError(t, err)
		assert.Equal(t, "neutral", entry.Emotion)
	})
}

func TestDiaryService_List(t *testing.T) {
	t.Run("pagination math", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("List", uint(9), repository.ListFilter{Offset: 40, Limit: 20}).
			Return(make([]models.DiaryEntry, 5), int64(45), nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		entries, pagination, err := svc.List(9, ListOptions{Page: 3, Limit: 20})

		require.NoError(t, err)
		assert.Len(t, entries, 5)
		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, int64(45), pagination.Total)
		assert.Equal(t, 3, pagination.Pages)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("defaults page 1 limit 20", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("List", uint(9), repository.ListFilter{Offset: 0, Limit: 20}).
			Return([]models.DiaryEntry{}, int64(0), nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		_, pagination, err := svc.List(9, ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 20, pagination.Limit)
		assert.Equal(t, 0, pagination.Pages)
	})

	t.Run("invalid options", func(t *testing.T) {
		svc := NewDiaryService(new(MockDiaryRepository), testLogger())

		for _, opts := range []ListOptions{
			{Page: -1},
			{Limit: 101},
			{Type: "note"},
			{StartDate: "not-a-date"},
			{EndDate: "not-a-date"},
		} {
			_, _, err := svc.List(9, opts)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("date range filter is passed through", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("List", uint(9), repository.ListFilter{
			Type:      models.TypeMemo,
			StartDate: &start,
			EndDate:   &end,
			Offset:    0,
			Limit:     20,
		}).Return([]models.DiaryEntry{}, int64(0), nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		_, _, err := svc.List(9, ListOptions{
			Type:      models.TypeMemo,
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})
		require.NoError(t, err)
		diaryRepo.AssertExpectations(t)
	})
}

func TestDiaryService_ListByMonth(t *testing.T) {
	t.Run("leap february bounds", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("FindByDateRange", uint(9),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		).Return([]models.DiaryEntry{}, nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		_, err := svc.ListByMonth(9, 2024, 2)
		require.NoError(t, err)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("december rolls into the new year correctly", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("FindByDateRange", uint(9),
			time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		).Return([]models.DiaryEntry{}, nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		_, err := svc.ListByMonth(9, 2025, 12)
		require.NoError(t, err)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("out of range", func(t *testing.T) {
		svc := NewDiaryService(new(MockDiaryRepository), testLogger())

		for _, tc := range []struct{ year, month int }{
			{2019, 5}, {2031, 5}, {2024, 0}, {2024, 13},
		} {
			_, err := svc.ListByMonth(9, tc.year, tc.month)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestDiaryService_UpdateAndDelete(t *testing.T) {
	t.Run("update keeps identity and creation time", func(t *testing.T) {
		created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("FindByID", uint(9), uint(4)).Return(&models.DiaryEntry{
			ID: 4, UserID: 9, CreatedAt: created,
		}, nil)
		diaryRepo.On("Update", mock.AnythingOfType("*models.DiaryEntry")).Return(nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		entry, err := svc.Update(9, 4, validInput())
		require.NoError(t, err)
		assert.Equal(t, uint(4), entry.ID)
		assert.Equal(t, created, entry.CreatedAt)
	})

	t.Run("update of a missing entry", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("FindByID", uint(9), uint(4)).Return(nil, repository.ErrDiaryNotFound)

		svc := NewDiaryService(diaryRepo, testLogger())
		_, err := svc.Update(9, 4, validInput())
		assert.ErrorIs(t, err, repository.ErrDiaryNotFound)
	})

	t.Run("delete is a soft delete", func(t *testing.T) {
		diaryRepo := new(MockDiaryRepository)
		diaryRepo.On("SoftDelete", uint(9), uint(4)).Return(nil)

		svc := NewDiaryService(diaryRepo, testLogger())
		require.NoError(t, svc.Delete(9, 4))
		diaryRepo.AssertExpectations(t)
	})
}
