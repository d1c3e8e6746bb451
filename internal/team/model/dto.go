package model

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// UpdateTeamRequest is the body of PUT /teams/:id.
type UpdateTeamRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// AddMemberRequest is the body of POST /teams/:id/members.
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// TeamResponse is a team with its members, earliest joined first.
type TeamResponse struct {
	Team
	Members     []TeamMember `json:"members"`
	MemberCount int          `json:"memberCount"`
}
