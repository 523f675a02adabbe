package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a menu/catalog section of one business.
type Category struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	BusinessID uint           `gorm:"index;not null" json:"business_id"`
	Name       string         `gorm:"not null" json:"name"`
	SortOrder  int            `gorm:"default:0;index" json:"sort_order"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
