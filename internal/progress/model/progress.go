package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
	userModel "github.com/festy23/challenge_tracker/internal/user/model"
)

// ProgressLog is the accumulated value a user logged for a challenge on one
// calendar day. Date is always midnight UTC of that day.
type ProgressLog struct {
	ID          string                    `gorm:"primaryKey;column:id;type:varchar(36)"                                                                              json:"id"`
	UserID      string                    `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:uq_progress_logs_user_challenge_date,priority:1"                json:"userId"`
	ChallengeID string                    `gorm:"column:challenge_id;type:varchar(36);not null;uniqueIndex:uq_progress_logs_user_challenge_date,priority:2;index:idx_progress_logs_challenge_id" json:"challengeId"`
	Date        time.Time                 `gorm:"column:date;type:date;not null;uniqueIndex:uq_progress_logs_user_challenge_date,priority:3"                          json:"date"`
	Value       float64                   `gorm:"column:value;not null;check:chk_progress_logs_value,value >= 0"                                                      json:"value"`
	CreatedAt   time.Time                 `gorm:"column:created_at;not null;autoCreateTime;index:idx_progress_logs_created_at"                                        json:"createdAt"`
	User        *userModel.User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"                                                                       json:"user,omitempty"`
	Challenge   *challengeModel.Challenge `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"                                                                  json:"challenge,omitempty"`
}

// TableName specifies the table name for GORM.
func (ProgressLog) TableName() string {
	return "progress_logs"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (p *ProgressLog) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Day returns the calendar day of t in loc as midnight UTC, the form stored
// in the date column.
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns local midnight of the day containing t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last nanosecond of the day containing t in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// InRange reports whether day, a calendar day in loc, lies within
// [StartOfDay(start), EndOfDay(end)].
func InRange(day time.Time, start, end time.Time, loc *time.Location) bool {
	local := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return !local.Before(StartOfDay(start, loc)) && !local.After(EndOfDay(end, loc))
}
