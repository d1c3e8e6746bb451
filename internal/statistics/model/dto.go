// Package model provides data transfer objects for statistics module.
package model

// Overview holds the dashboard counters.
type Overview struct {
	Users              int64   `json:"users"`
	Teams              int64   `json:"teams"`
	Challenges         int64   `json:"challenges"`
	ActiveChallenges   int64   `json:"activeChallenges"`
	UpcomingChallenges int64   `json:"upcomingChallenges"`
	PastChallenges     int64   `json:"pastChallenges"`
	ProgressLogs       int64   `json:"progressLogs"`
	Participants       int64   `json:"participants"`
	TotalValue         float64 `json:"totalValue"`
}
