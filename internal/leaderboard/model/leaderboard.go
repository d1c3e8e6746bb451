// Package model contains leaderboard rows and responses.
package model

// UserTotal is the sum of one user's progress values for a challenge.
type UserTotal struct {
	UserID   string
	UserName string
	Total    float64
}

// Member is a team membership with the names needed for rankings.
type Member struct {
	TeamID   string
	TeamName string
	UserID   string
	UserName string
}

// IndividualEntry is one row of the individual leaderboard.
type IndividualEntry struct {
	Rank       int     `json:"rank"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	TotalValue float64 `json:"totalValue"`
}

// TeamEntry is one row of the team leaderboard.
type TeamEntry struct {
	Rank         int     `json:"rank"`
	TeamID       string  `json:"teamId"`
	TeamName     string  `json:"teamName"`
	MemberCount  int     `json:"memberCount"`
	AverageValue float64 `json:"averageValue"`
	TotalValue   float64 `json:"totalValue"`
}

// IndividualResponse is the body of GET /challenges/:id/leaderboard/individual.
type IndividualResponse struct {
	ChallengeID    string            `json:"challengeId"`
	ChallengeTitle string            `json:"challengeTitle"`
	Leaderboard    []IndividualEntry `json:"leaderboard"`
}

// TeamResponse is the body of GET /challenges/:id/leaderboard/teams.
type TeamResponse struct {
	ChallengeID    string      `json:"challengeId"`
	ChallengeTitle string      `json:"challengeTitle"`
	Leaderboard    []TeamEntry `json:"leaderboard"`
}

// TeamInternalResponse is the body of GET /teams/:id/leaderboard.
type TeamInternalResponse struct {
	TeamID         string            `json:"teamId"`
	TeamName       string            `json:"teamName"`
	ChallengeID    string            `json:"challengeId"`
	ChallengeTitle string            `json:"challengeTitle"`
	Leaderboard    []IndividualEntry `json:"leaderboard"`
}
