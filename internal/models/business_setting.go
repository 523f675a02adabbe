package models

import (
	"time"
)

// BusinessSetting holds per-business ordering configuration.
// Read-only input to the checkout computation.
type BusinessSetting struct {
	ID                    uint      `gorm:"primarykey" json:"id"`
	BusinessID            uint      `gorm:"uniqueIndex;not null" json:"business_id"`
	AcceptingOrders       bool      `gorm:"not null;default:true" json:"accepting_orders"`
	MinOrderAmount        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_amount"`
	DeliveryFee           Money     `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_fee"`
	FreeDeliveryThreshold Money     `gorm:"type:decimal(20,2);not null;default:0" json:"free_delivery_threshold"` // 0 disables the waiver
	Currency              string    `gorm:"type:varchar(8);not null;default:TRY" json:"currency"`
	NotifyURL             string    `gorm:"type:varchar(500)" json:"notify_url,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (BusinessSetting) TableName() string {
	return "business_settings"
}
