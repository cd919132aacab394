package domain

import "time"

// SleepStats holds lifetime survey averages for a user.
// @Description Averages over all completed surveys.
type SleepStats struct {
	AvgSleepDuration float64 `json:"avg_sleep_duration" example:"7.2"`
	AvgSleepQuality  float64 `json:"avg_sleep_quality" example:"6.8"`
	AvgAwakenings    float64 `json:"avg_awakenings" example:"1.3"`
	TotalSurveys     int     `json:"total_surveys" example:"42"`
}

// DayStats is one recent day's duration and quality for the stats summary.
type DayStats struct {
	Date          string  `json:"date" example:"2024-03-15"`
	SleepDuration float64 `json:"sleep_duration" example:"6.5"`
	SleepQuality  int     `json:"sleep_quality" example:"7"`
}

// StatsResponse is the response body for the stats endpoint.
// @Description Lifetime averages plus the last seven recorded days.
type StatsResponse struct {
	User     UserResponse `json:"user"`
	Stats    SleepStats   `json:"stats"`
	LastWeek []DayStats   `json:"last_week"`
}

// AchievementResponse is one milestone entry.
// @Description Survey-count milestone.
type AchievementResponse struct {
	Type      string    `json:"type" example:"10 surveys"`
	CreatedAt time.Time `json:"created_at"`
}

// AchievementListResponse is the response body for the achievements endpoint.
type AchievementListResponse struct {
	Data []AchievementResponse `json:"data"`
}
