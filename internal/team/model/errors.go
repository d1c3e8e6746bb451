package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberExists indicates that the user already belongs to the team.
	ErrMemberExists = errors.New("user is already a member of this team")
	// ErrMembershipNotFound indicates that the user is not a member of the team.
	ErrMembershipNotFound = errors.New("team membership not found")
)
