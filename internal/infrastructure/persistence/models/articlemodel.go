package models

import (
	"time"

	"gorm.io/datatypes"
)

// ArticleModel represents the database persistence model for knowledge base
// articles. Content is markdown source; rendering happens at the interface
// layer.
type ArticleModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"size:200;not null"`
	Category  string         `gorm:"size:50;not null;index"`
	Content   string         `gorm:"type:text;not null"`
	Keywords  datatypes.JSON `gorm:"type:json"` // ["keyword", ...]
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ArticleModel) TableName() string {
	return "kb_articles"
}
