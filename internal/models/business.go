package models

import (
	"time"

	"gorm.io/gorm"
)

// Business is a tenant (restaurant, coffee shop, clinic, ...).
type Business struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name          string         `gorm:"not null" json:"name"`
	Category      string         `gorm:"index;not null" json:"category"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Phone         string         `gorm:"type:varchar(32)" json:"phone,omitempty"`
	WhatsappPhone string         `gorm:"type:varchar(32)" json:"whatsapp_phone,omitempty"`
	Address       string         `gorm:"type:text" json:"address,omitempty"`
	LogoURL       string         `gorm:"type:varchar(500)" json:"logo_url,omitempty"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Setting *BusinessSetting `gorm:"foreignKey:BusinessID" json:"setting,omitempty"`
}

// TableName sets the table name.
func (Business) TableName() string {
	return "businesses"
}
