package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// CouponRepository is the coupon data access interface.
type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(businessID uint, code string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(id uint) error
	List(filter CouponListFilter) ([]models.Coupon, int64, error)
	RedeemIncrement(id uint) (bool, error)
	ReleaseDecrement(id uint) error
	WithTx(tx *gorm.DB) *GormCouponRepository
}

// GormCouponRepository is the GORM implementation.
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a coupon repository.
func NewCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCouponRepository) WithTx(tx *gorm.DB) *GormCouponRepository {
	if tx == nil {
		return r
	}
	return &GormCouponRepository{db: tx}
}

// GetByID fetches a coupon by id.
func (r *GormCouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetByCode fetches a coupon of one business by code. Codes are stored
// uppercase, so lookup normalizes first.
func (r *GormCouponRepository) GetByCode(businessID uint, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if err := r.db.Where("business_id = ? AND code = ?", businessID, normalized).
		First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// Create inserts a coupon.
func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

// Update saves a coupon.
func (r *GormCouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

// Delete soft-deletes a coupon.
func (r *GormCouponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

// List fetches coupons of one business.
func (r *GormCouponRepository) List(filter CouponListFilter) ([]models.Coupon, int64, error) {
	var coupons []models.Coupon
	query := r.db.Model(&models.Coupon{})

	if filter.BusinessID > 0 {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.Code != "" {
		query = query.Where("code = ?", strings.ToUpper(strings.TrimSpace(filter.Code)))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.ScopeRefID > 0 {
		// scope_ref_ids is a JSON array like [1,2,3]; match on boundaries so
		// id 1 does not hit 11.
		exact := fmt.Sprintf("[%d]", filter.ScopeRefID)
		prefix := fmt.Sprintf("[%d,%%", filter.ScopeRefID)
		middle := fmt.Sprintf("%%,%d,%%", filter.ScopeRefID)
		suffix := fmt.Sprintf("%%,%d]", filter.ScopeRefID)
		query = query.Where(
			"(scope_ref_ids = ? OR scope_ref_ids LIKE ? OR scope_ref_ids LIKE ? OR scope_ref_ids LIKE ?)",
			exact,
			prefix,
			middle,
			suffix,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

// RedeemIncrement bumps used_count by one, guarded by the usage limit in the
// same statement. Returns false when the limit is already exhausted, which
// callers must treat as a failed redemption.
func (r *GormCouponRepository) RedeemIncrement(id uint) (bool, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Where("usage_limit = 0 OR used_count < usage_limit").
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ReleaseDecrement gives one redemption back, clamped at zero.
func (r *GormCouponRepository) ReleaseDecrement(id uint) error {
	return r.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Where("used_count > 0").
		UpdateColumn("used_count", gorm.Expr("used_count - 1")).Error
}
