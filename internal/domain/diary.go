package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiaryRecord is one self-reported sleep survey for one user and one day.
// Records are immutable once created; the analysis engine only reads them.
type DiaryRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_diary_user_date" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_diary_user_date" json:"date"`
	Bedtime       string    `gorm:"type:varchar(5);not null" json:"bedtime"`
	WakeupTime    string    `gorm:"type:varchar(5);not null" json:"wakeup_time"`
	SleepDuration float64   `gorm:"not null" json:"sleep_duration"`
	Awakenings    int       `gorm:"type:smallint;not null" json:"awakenings"`
	SleepQuality  int       `gorm:"type:smallint;not null" json:"sleep_quality"`
	MoodMorning   int       `gorm:"type:smallint;not null" json:"mood_morning"`
	StressLevel   int       `gorm:"type:smallint;not null" json:"stress_level"`
	Exercise      int       `gorm:"not null" json:"exercise"`
	Caffeine      int       `gorm:"type:smallint;not null" json:"caffeine"`
	Alcohol       int       `gorm:"type:smallint;not null" json:"alcohol"`
	ScreenTime    int       `gorm:"not null" json:"screen_time"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DiaryRecord) TableName() string {
	return "diary_records"
}

// CreateDiaryRecordRequest is the request body for submitting a survey.
// @Description One day's sleep diary entry.
type CreateDiaryRecordRequest struct {
	// Diary date (YYYY-MM-DD); defaults to today when omitted
	Date *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-15"`
	// Bedtime the previous evening (HH:MM)
	Bedtime string `json:"bedtime" validate:"required,clock" example:"23:30"`
	// Wake-up time this morning (HH:MM)
	WakeupTime string `json:"wakeup_time" validate:"required,clock" example:"06:30"`
	// Approximate hours slept
	SleepDuration float64 `json:"sleep_duration" validate:"required,gt=0,lte=24" example:"6.5"`
	// Number of night awakenings
	Awakenings int `json:"awakenings" validate:"min=0" example:"1"`
	// Sleep quality rating 1 (poor) to 10 (excellent)
	SleepQuality int `json:"sleep_quality" validate:"required,min=1,max=10" example:"7"`
	// Morning mood rating 1-10
	MoodMorning int `json:"mood_morning" validate:"required,min=1,max=10" example:"6"`
	// Pre-sleep stress level 1-10
	StressLevel int `json:"stress_level" validate:"required,min=1,max=10" example:"4"`
	// Exercise minutes yesterday
	Exercise int `json:"exercise" validate:"min=0" example:"30"`
	// Caffeinated drinks yesterday
	Caffeine int `json:"caffeine" validate:"min=0" example:"2"`
	// Alcohol servings yesterday
	Alcohol int `json:"alcohol" validate:"min=0" example:"0"`
	// Screen minutes before bed
	ScreenTime int `json:"screen_time" validate:"min=0" example:"45"`
	// Optional free-text notes
	Notes string `json:"notes,omitempty" validate:"max=2000" example:"Woke up before the alarm."`
}

// DiaryRecordResponse is the response body for diary endpoints.
// @Description Stored diary entry.
type DiaryRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Date          string    `json:"date" example:"2024-03-15"`
	Bedtime       string    `json:"bedtime"`
	WakeupTime    string    `json:"wakeup_time"`
	SleepDuration float64   `json:"sleep_duration"`
	Awakenings    int       `json:"awakenings"`
	SleepQuality  int       `json:"sleep_quality"`
	MoodMorning   int       `json:"mood_morning"`
	StressLevel   int       `json:"stress_level"`
	Exercise      int       `json:"exercise"`
	Caffeine      int       `json:"caffeine"`
	Alcohol       int       `json:"alcohol"`
	ScreenTime    int       `json:"screen_time"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (d *DiaryRecord) ToResponse() DiaryRecordResponse {
	return DiaryRecordResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Date:          d.Date.Format("2006-01-02"),
		Bedtime:       d.Bedtime,
		WakeupTime:    d.WakeupTime,
		SleepDuration: d.SleepDuration,
		Awakenings:    d.Awakenings,
		SleepQuality:  d.SleepQuality,
		MoodMorning:   d.MoodMorning,
		StressLevel:   d.StressLevel,
		Exercise:      d.Exercise,
		Caffeine:      d.Caffeine,
		Alcohol:       d.Alcohol,
		ScreenTime:    d.ScreenTime,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}
}

// DiaryListResponse is the response body for listing diary records.
// @Description Paginated diary history, newest first.
type DiaryListResponse struct {
	Data       []DiaryRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DiaryFilter contains filter parameters for listing diary records.
type DiaryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
