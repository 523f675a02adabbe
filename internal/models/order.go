package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a customer order. Orders are never hard-deleted; the lifecycle is
// driven through Status plus the append-only status log.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	BusinessID      uint           `gorm:"index;not null" json:"business_id"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerPhone   string         `gorm:"index;not null" json:"customer_phone"`
	CustomerEmail   string         `json:"customer_email,omitempty"`
	DeliveryType    string         `gorm:"not null" json:"delivery_type"` // pickup / delivery / dinein
	DeliveryAddress string         `gorm:"type:text" json:"delivery_address,omitempty"`
	TableLabel      string         `json:"table_label,omitempty"`
	PaymentMethod   string         `gorm:"not null" json:"payment_method"` // cash / card / transfer
	OrderNote       string         `gorm:"type:text" json:"order_note,omitempty"`
	Status          string         `gorm:"index;not null" json:"status"`
	Currency        string         `gorm:"not null" json:"currency"`
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DiscountAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	DeliveryFee     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"delivery_fee"`
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	CouponID        *uint          `gorm:"index" json:"coupon_id,omitempty"`
	ClientIP        string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items      []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	StatusLogs []OrderStatusLog `gorm:"foreignKey:OrderID" json:"status_logs,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
