package models

import (
	"time"
)

// CouponUsage is the append-only redemption ledger. Rows are never updated
// or deleted by the application.
type CouponUsage struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CouponID       uint      `gorm:"index;not null" json:"coupon_id"`
	OrderID        uint      `gorm:"index;not null" json:"order_id"`
	CustomerPhone  string    `gorm:"index;not null" json:"customer_phone"`
	DiscountAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (CouponUsage) TableName() string {
	return "coupon_usages"
}
