package model

// ChallengeRequest is the body of POST /challenges and PUT /challenges/:id.
// Dates are either "2006-01-02", read in the application time zone, or RFC 3339.
type ChallengeRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"required,notblank"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// ChallengeResponse is a challenge as returned by GET /challenges.
type ChallengeResponse struct {
	Challenge
	Status           Status `json:"status"`
	ProgressLogCount int64  `json:"progressLogCount"`
}

// ChallengeDetailResponse is a challenge as returned by GET /challenges/:id.
type ChallengeDetailResponse struct {
	Challenge
	Status           Status `json:"status"`
	ProgressLogCount int64  `json:"progressLogCount"`
	ParticipantCount int64  `json:"participantCount"`
}
