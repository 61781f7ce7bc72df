package models

import "time"

// Entry types
const (
	TypeMemo  = "memo"
	TypeDiary = "diary"
)

// Emotion values recorded with an entry
var ValidEmotions = []string{"very-good", "good", "neutral", "bad", "very-bad"}

// Reminder repeat cadences
var ValidRepeats = []string{"none", "daily", "weekly", "monthly"}

// Weather is an optional snapshot taken when the entry was written
type Weather struct {
	Condition   *string  `json:"condition,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

// Location is an optional place reference for the entry
type Location struct {
	Name      *string  `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Reminder is an optional notification schedule attached to the entry
type Reminder struct {
	Enabled       bool       `gorm:"not null;default:false" json:"enabled"`
	Time          *time.Time `json:"time,omitempty"`
	BeforeMinutes int        `gorm:"not null;default:10" json:"beforeMinutes"`
	Repeat        string     `gorm:"not null;default:none" json:"repeat"`
}

// DiaryImage is an uploaded attachment associated with an entry, kept in
// upload order via Position
type DiaryImage struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	DiaryEntryID uint      `gorm:"not null;index" json:"-"`
	Position     int       `gorm:"not null;default:0" json:"-"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	UploadDate   time.Time `gorm:"not null" json:"uploadDate"`
}

// TableName overrides the table name
func (DiaryImage) TableName() string {
	return "diary_images"
}

// DiaryEntry is a single memo or diary record owned by exactly one user.
// IsDeleted implements soft delete: every user-facing read must filter it out
// explicitly; only the admin listing reads past it.
type DiaryEntry struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	UserID    uint         `gorm:"not null;index;index:idx_user_date,priority:1;index:idx_user_type,priority:1;index:idx_user_deleted,priority:1" json:"userId"`
	Title     string       `gorm:"not null" json:"title"`
	Content   string       `gorm:"not null;type:text" json:"content"`
	Type      string       `gorm:"not null;default:memo;index:idx_user_type,priority:2" json:"type"`
	Emotion   string       `gorm:"not null;default:neutral" json:"emotion"`
	Date      time.Time    `gorm:"not null;index;index:idx_user_date,priority:2,sort:desc" json:"date"`
	Images    []DiaryImage `gorm:"foreignKey:DiaryEntryID" json:"images"`
	Tags      []string     `gorm:"serializer:json" json:"tags"`
	Weather   *Weather     `gorm:"embedded;embeddedPrefix:weather_" json:"weather,omitempty"`
	Location  *Location    `gorm:"embedded;embeddedPrefix:location_" json:"location,omitempty"`
	Reminder  Reminder     `gorm:"embedded;embeddedPrefix:reminder_" json:"reminder"`
	IsPrivate bool         `gorm:"not null;default:false" json:"isPrivate"`
	IsDeleted bool         `gorm:"not null;default:false;index:idx_user_deleted,priority:2" json:"isDeleted"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// TableName overrides the table name
func (DiaryEntry) TableName() string {
	return "diary_entries"
}

// IsValidType reports whether the entry type is memo or diary
func IsValidType(t string) bool {
	return t == TypeMemo || t == TypeDiary
}

// IsValidEmotion reports whether the emotion value is recognized
func IsValidEmotion(e string) bool {
	for _, v := range ValidEmotions {
		if v == e {
			return true
		}
	}
	return false
}

// IsValidRepeat reports whether the reminder cadence is recognized
func IsValidRepeat(r string) bool {
	for _, v := range ValidRepeats {
		if v == r {
			return true
		}
	}
	return false
}
