package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a menu/catalog item. Size and extra options are stored as
// JSON snapshots: [{"name": "...", "price_delta": "..."}].
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	BusinessID   uint           `gorm:"index;not null" json:"business_id"`
	CategoryID   uint           `gorm:"index" json:"category_id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Price        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	ImageURL     string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	SizeOptions  JSONArray      `gorm:"type:json" json:"size_options,omitempty"`
	ExtraOptions JSONArray      `gorm:"type:json" json:"extra_options,omitempty"`
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`
	IsAvailable  bool           `gorm:"not null;default:true" json:"is_available"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
