package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender is the user's self-reported gender.
// @Description Gender: male, female, or other.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Lifestyle labels used by the profile recommender. Matching elsewhere is
// case-insensitive substring matching, so custom labels still work.
const (
	LifestyleActive        = "active"
	LifestyleLightlyActive = "lightly-active"
	LifestyleSedentary     = "sedentary"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username         string    `gorm:"type:varchar(64);not null" json:"username"`
	Age              int       `gorm:"type:smallint;not null" json:"age"`
	Gender           Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	Lifestyle        string    `gorm:"type:varchar(32);not null" json:"lifestyle"`
	Timezone         string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	NotificationTime string    `gorm:"type:varchar(5);not null;default:'08:00'" json:"notification_time"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastActiveAt     time.Time `json:"last_active_at"`
}

func (User) TableName() string {
	return "users"
}

// AgeCategory buckets the user's age for display purposes.
func (u *User) AgeCategory() string {
	switch {
	case u.Age < 18:
		return "teen"
	case u.Age < 30:
		return "young adult"
	case u.Age < 45:
		return "adult"
	case u.Age < 60:
		return "middle-aged"
	default:
		return "senior"
	}
}

// LifestyleContains reports whether the lifestyle label contains the given
// keyword, ignoring case.
func (u *User) LifestyleContains(keyword string) bool {
	return strings.Contains(strings.ToLower(u.Lifestyle), strings.ToLower(keyword))
}

// CreateUserRequest is the request body for registering a user.
// @Description Registration payload with demographic profile.
type CreateUserRequest struct {
	// Display name
	Username string `json:"username" validate:"required,max=64" example:"alice"`
	// Age in years
	Age int `json:"age" validate:"required,min=1,max=120" example:"34"`
	// Gender: male, female, or other
	Gender Gender `json:"gender" validate:"required,oneof=male female other" example:"female"`
	// Lifestyle label (active, lightly-active, sedentary)
	Lifestyle string `json:"lifestyle" validate:"required,max=32" example:"sedentary"`
	// Optional IANA timezone (defaults to UTC)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
	// Optional daily survey notification time (HH:MM, defaults to 08:00)
	NotificationTime *string `json:"notification_time,omitempty" validate:"omitempty,clock" example:"08:00"`
}

// UserResponse is the response body for user endpoints.
// @Description User record with demographic profile.
type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	Age              int       `json:"age"`
	AgeCategory      string    `json:"age_category"`
	Gender           Gender    `json:"gender"`
	Lifestyle        string    `json:"lifestyle"`
	Timezone         string    `json:"timezone"`
	NotificationTime string    `json:"notification_time"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Age:              u.Age,
		AgeCategory:      u.AgeCategory(),
		Gender:           u.Gender,
		Lifestyle:        u.Lifestyle,
		Timezone:         u.Timezone,
		NotificationTime: u.NotificationTime,
		CreatedAt:        u.CreatedAt,
	}
}
