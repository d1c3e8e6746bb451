package model

import (
	"time"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
)

// RecordRequest is the body of POST /progress.
// Date is either "2006-01-02", read in the application time zone, or RFC 3339.
type RecordRequest struct {
	UserID      string   `json:"userId"      binding:"required"`
	ChallengeID string   `json:"challengeId" binding:"required"`
	Date        string   `json:"date"        binding:"required"`
	Value       *float64 `json:"value"       binding:"required"`
}

// ListFilter selects progress logs by user, challenge or both.
type ListFilter struct {
	UserID      string
	ChallengeID string
}

// Empty reports whether neither criterion is set.
func (f ListFilter) Empty() bool {
	return f.UserID == "" && f.ChallengeID == ""
}

// ActivityEntry is one row of the recent activity feed.
type ActivityEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	ChallengeID    string    `json:"challengeId"`
	ChallengeTitle string    `json:"challengeTitle"`
	Date           time.Time `json:"date"`
	Value          float64   `json:"value"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserProgressResponse summarises one user's progress on one challenge.
type UserProgressResponse struct {
	UserID       string                   `json:"userId"`
	UserName     string                   `json:"userName"`
	Challenge    challengeModel.Challenge `json:"challenge"`
	Status       challengeModel.Status    `json:"status"`
	TotalValue   float64                  `json:"totalValue"`
	DailyAverage float64                  `json:"dailyAverage"`
	DaysLogged   int                      `json:"daysLogged"`
	Logs         []ProgressLog            `json:"logs"`
}
