package repository

import "time"

// CategoryListFilter filters the category list of one business.
type CategoryListFilter struct {
	Page       int
	PageSize   int
	BusinessID uint
	Search     string
	OnlyActive bool
}

// ProductListFilter filters the product list of one business.
type ProductListFilter struct {
	Page          int
	PageSize      int
	BusinessID    uint
	CategoryID    uint
	Search        string
	OnlyAvailable bool
	WithCategory  bool
}

// DiningTableListFilter filters the table list of one business.
type DiningTableListFilter struct {
	Page       int
	PageSize   int
	BusinessID uint
	OnlyActive bool
}

// CouponListFilter filters the coupon list of one business.
type CouponListFilter struct {
	Page       int
	PageSize   int
	BusinessID uint
	Code       string
	Type       string
	IsActive   *bool
	IsPublic   *bool
	ScopeRefID uint
}

// CouponUsageListFilter filters the redemption ledger.
type CouponUsageListFilter struct {
	Page          int
	PageSize      int
	CouponID      uint
	CustomerPhone string
}

// OrderListFilter filters the order list of one business.
type OrderListFilter struct {
	Page          int
	PageSize      int
	BusinessID    uint
	Status        string
	OrderNo       string
	CustomerPhone string
	DeliveryType  string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}
