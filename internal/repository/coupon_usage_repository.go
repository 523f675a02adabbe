package repository

import (
	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// CouponUsageRepository is the redemption ledger data access interface.
// The ledger is append-only.
type CouponUsageRepository interface {
	Create(usage *models.CouponUsage) error
	CountByPhone(couponID uint, customerPhone string) (int64, error)
	ListByOrderID(orderID uint) ([]models.CouponUsage, error)
	List(filter CouponUsageListFilter) ([]models.CouponUsage, int64, error)
	WithTx(tx *gorm.DB) *GormCouponUsageRepository
}

// GormCouponUsageRepository is the GORM implementation.
type GormCouponUsageRepository struct {
	db *gorm.DB
}

// NewCouponUsageRepository creates a usage repository.
func NewCouponUsageRepository(db *gorm.DB) *GormCouponUsageRepository {
	return &GormCouponUsageRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCouponUsageRepository) WithTx(tx *gorm.DB) *GormCouponUsageRepository {
	if tx == nil {
		return r
	}
	return &GormCouponUsageRepository{db: tx}
}

// Create appends a redemption row.
func (r *GormCouponUsageRepository) Create(usage *models.CouponUsage) error {
	return r.db.Create(usage).Error
}

// CountByPhone counts how often one phone number redeemed a coupon.
// Redemptions of cancelled or rejected orders were given back, so they do
// not count against the per-user cap.
func (r *GormCouponUsageRepository) CountByPhone(couponID uint, customerPhone string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CouponUsage{}).
		Joins("JOIN orders ON orders.id = coupon_usages.order_id").
		Where("coupon_usages.coupon_id = ? AND coupon_usages.customer_phone = ?", couponID, customerPhone).
		Where("orders.status NOT IN ?", []string{constants.OrderStatusCancelled, constants.OrderStatusRejected}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByOrderID fetches the redemption rows of one order.
func (r *GormCouponUsageRepository) ListByOrderID(orderID uint) ([]models.CouponUsage, error) {
	var usages []models.CouponUsage
	if err := r.db.Where("order_id = ?", orderID).Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

// List fetches redemption rows for the admin ledger view.
func (r *GormCouponUsageRepository) List(filter CouponUsageListFilter) ([]models.CouponUsage, int64, error) {
	query := r.db.Model(&models.CouponUsage{})

	if filter.CouponID > 0 {
		query = query.Where("coupon_id = ?", filter.CouponID)
	}
	if filter.CustomerPhone != "" {
		query = query.Where("customer_phone = ?", filter.CustomerPhone)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var usages []models.CouponUsage
	if err := query.Order("id desc").Find(&usages).Error; err != nil {
		return nil, 0, err
	}
	return usages, total, nil
}
