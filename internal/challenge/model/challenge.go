package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxTitleLength is the maximum length of a challenge title, in characters.
const MaxTitleLength = 200

// Challenge is a time-boxed activity users log daily progress against.
type Challenge struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	Title       string    `gorm:"column:title;type:varchar(200);not null"                   json:"title"`
	Description string    `gorm:"column:description;type:text;not null"                     json:"description"`
	StartDate   time.Time `gorm:"column:start_date;not null;index:idx_challenges_start_date" json:"startDate"`
	EndDate     time.Time `gorm:"column:end_date;not null;index:idx_challenges_end_date"     json:"endDate"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime"                 json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Challenge) TableName() string {
	return "challenges"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (c *Challenge) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave stores both bounds in UTC so that range predicates compare
// consistently on every dialect.
func (c *Challenge) BeforeSave(_ *gorm.DB) error {
	c.StartDate = c.StartDate.UTC()
	c.EndDate = c.EndDate.UTC()
	return nil
}

// StatusAt classifies the challenge relative to now.
func (c Challenge) StatusAt(now time.Time) Status {
	return StatusAt(c.StartDate, c.EndDate, now)
}
