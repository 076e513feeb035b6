package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"size:200;not null"`
	Description string         `gorm:"type:text;not null"`
	Category    string         `gorm:"size:50;not null;index"`
	Priority    string         `gorm:"size:20;not null;index"`
	Status      string         `gorm:"size:20;not null;index"`
	OwnerID     uint           `gorm:"not null;index"`
	Attachments datatypes.JSON `gorm:"type:json"` // [{name, data, mimeType}]
	Notes       datatypes.JSON `gorm:"type:json"` // [{text, createdAt, createdBy}]
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
