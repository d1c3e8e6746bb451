package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxNameLength is the maximum length of a user name, in characters.
const MaxNameLength = 100

// User is a participant who logs progress and joins teams.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"       json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"      json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"   json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
