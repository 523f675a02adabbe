package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff is a business-scoped admin account.
type Staff struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	BusinessID         uint           `gorm:"index;not null" json:"business_id"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	Name               string         `json:"name"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	Role               string         `gorm:"not null;default:staff" json:"role"` // owner / staff
	IsActive           bool           `gorm:"not null;default:true" json:"is_active"`
	TokenVersion       int            `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time     `json:"-"`
	LastLoginAt        *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Staff) TableName() string {
	return "staff"
}
