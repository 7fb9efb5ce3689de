package models

import "time"

// DateLayout is the calendar date format used on the wire and in history.
const DateLayout = "2006-01-02"

// ScoreRecord is a stored daily score. Raw nutrition and exercise logs are
// never persisted, only the computed total.
type ScoreRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserRef   string    `gorm:"size:128;not null;uniqueIndex:idx_score_user_date" json:"user_ref" example:"user-42"`
	ScoreDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_score_user_date" json:"score_date" example:"2023-01-01"`
	Score     float64   `gorm:"not null" json:"score" example:"105.3"`
}

// Daily converts the record to its wire form.
func (r ScoreRecord) Daily() DailySnaccScore {
	return DailySnaccScore{Date: r.ScoreDate.Format(DateLayout), Score: r.Score}
}
