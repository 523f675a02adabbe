package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is a business-scoped discount code. Codes are stored uppercase and
// matched case-insensitively within one business.
type Coupon struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	BusinessID     uint           `gorm:"index:idx_coupons_business_code,unique;not null" json:"business_id"`
	Code           string         `gorm:"index:idx_coupons_business_code,unique;not null" json:"code"`
	Type           string         `gorm:"not null" json:"type"` // fixed / percentage / free_delivery / bogo
	Value          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"value"`
	MinOrderAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_order_amount"`
	MaxDiscount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"max_discount"` // 0 means no cap
	UsageLimit     int            `gorm:"not null;default:0" json:"usage_limit"`                     // 0 means unlimited
	UsedCount      int            `gorm:"not null;default:0" json:"used_count"`
	PerUserLimit   int            `gorm:"not null;default:0" json:"per_user_limit"` // keyed by customer phone
	ScopeType      string         `gorm:"not null;default:all" json:"scope_type"`   // all / category / product
	ScopeRefIDs    string         `gorm:"type:text" json:"scope_ref_ids"`           // JSON array of ids
	ValidFrom      *time.Time     `gorm:"index" json:"valid_from"`
	ValidUntil     *time.Time     `gorm:"index" json:"valid_until"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	IsPublic       bool           `gorm:"not null;default:false" json:"is_public"`
	FirstOrderOnly bool           `gorm:"not null;default:false" json:"first_order_only"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Coupon) TableName() string {
	return "coupons"
}
