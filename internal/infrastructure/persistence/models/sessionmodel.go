package models

import "time"

// SessionModel represents the database persistence model for login sessions.
type SessionModel struct {
	ID             string    `gorm:"primarykey;size:64"`
	UserID         uint      `gorm:"not null;index"`
	IPAddress      string    `gorm:"size:45"`
	UserAgent      string    `gorm:"size:512"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	LastActivityAt time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
