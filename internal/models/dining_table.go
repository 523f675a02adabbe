package models

import (
	"time"

	"gorm.io/gorm"
)

// DiningTable labels an in-house table; dine-in orders reference it.
type DiningTable struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	BusinessID uint           `gorm:"index;not null" json:"business_id"`
	Label      string         `gorm:"not null" json:"label"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (DiningTable) TableName() string {
	return "dining_tables"
}
