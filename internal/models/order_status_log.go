package models

import (
	"time"
)

// OrderStatusLog is the append-only status history of one order.
type OrderStatusLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `gorm:"not null" json:"to_status"`
	Actor      string    `gorm:"not null" json:"actor"` // system / staff / customer
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (OrderStatusLog) TableName() string {
	return "order_status_logs"
}
