package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/festy23/challenge_tracker/internal/user/model"
)

// MaxNameLength is the maximum length of a team name, in characters.
const MaxNameLength = 100

// Team groups users for the team leaderboards.
type Team struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"     json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"    json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (t *Team) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TeamMember links a user to a team. A user joins a given team at most once.
type TeamMember struct {
	ID       string          `gorm:"primaryKey;column:id;type:varchar(36)"                                 json:"id"`
	UserID   string          `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:uq_team_members_user_team" json:"userId"`
	TeamID   string          `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex:uq_team_members_user_team;index:idx_team_members_team_id" json:"teamId"`
	JoinedAt time.Time       `gorm:"column:joined_at;not null"                                             json:"joinedAt"`
	User     *userModel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"                         json:"user,omitempty"`
	Team     *Team           `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"                         json:"team,omitempty"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// BeforeCreate assigns a UUID and the join time when not set.
func (m *TeamMember) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	return nil
}
