package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a priced line snapshot. Unit price already includes the
// selected size delta; extras are snapshotted with their own prices.
type OrderItem struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrderID        uint           `gorm:"index;not null" json:"order_id"`
	ProductID      uint           `gorm:"index;not null" json:"product_id"`
	ProductName    string         `gorm:"not null" json:"product_name"`
	CategoryID     uint           `gorm:"index" json:"category_id"`
	SizeName       string         `json:"size_name,omitempty"`
	ExtrasJSON     JSONArray      `gorm:"type:json" json:"extras,omitempty"` // [{"name": ..., "price": ...}]
	UnitPrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	TotalPrice     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CouponDiscount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"coupon_discount_amount"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
