package model

import "time"

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// UpdateUserRequest is the body of PUT /users/:id.
type UpdateUserRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// TeamMembership is a team the user belongs to.
type TeamMembership struct {
	ID       string    `json:"id"`
	TeamID   string    `json:"teamId"`
	TeamName string    `json:"teamName"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ProgressEntry is one of the user's progress logs with its challenge title.
type ProgressEntry struct {
	ID             string    `json:"id"`
	ChallengeID    string    `json:"challengeId"`
	ChallengeTitle string    `json:"challengeTitle"`
	Date           time.Time `json:"date"`
	Value          float64   `json:"value"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserResponse is a user as returned by GET /users.
type UserResponse struct {
	User
	TeamMemberships  []TeamMembership `json:"teamMemberships"`
	ProgressLogCount int64            `json:"progressLogCount"`
}

// UserDetailResponse is a user as returned by GET /users/:id.
type UserDetailResponse struct {
	User
	TeamMemberships []TeamMembership `json:"teamMemberships"`
	ProgressLogs    []ProgressEntry  `json:"progressLogs"`
}
