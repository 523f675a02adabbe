package service

import (
	"encoding/json"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponAdminService owns coupon management for the admin panel.
type CouponAdminService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
}

// NewCouponAdminService creates a coupon admin service.
func NewCouponAdminService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponAdminService {
	return &CouponAdminService{
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
	}
}

var validCouponTypes = map[string]bool{
	constants.CouponTypeFixed:        true,
	constants.CouponTypePercentage:   true,
	constants.CouponTypeFreeDelivery: true,
	constants.CouponTypeBogo:         true,
}

var validScopeTypes = map[string]bool{
	constants.ScopeTypeAll:      true,
	constants.ScopeTypeCategory: true,
	constants.ScopeTypeProduct:  true,
}

// Create validates and stores a new coupon. The code is stored uppercase so
// redemption can match case-insensitively.
func (s *CouponAdminService) Create(coupon *models.Coupon) error {
	if err := normalizeCoupon(coupon); err != nil {
		return err
	}
	existing, err := s.couponRepo.GetByCode(coupon.BusinessID, coupon.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrCouponCodeExists
	}
	return s.couponRepo.Create(coupon)
}

// Update validates and saves coupon changes. used_count is not editable.
func (s *CouponAdminService) Update(businessID uint, coupon *models.Coupon) error {
	current, err := s.couponRepo.GetByID(coupon.ID)
	if err != nil {
		return err
	}
	if current == nil || current.BusinessID != businessID {
		return ErrCouponNotFound
	}
	coupon.BusinessID = current.BusinessID
	coupon.UsedCount = current.UsedCount
	if err := normalizeCoupon(coupon); err != nil {
		return err
	}
	if coupon.Code != current.Code {
		existing, err := s.couponRepo.GetByCode(businessID, coupon.Code)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != coupon.ID {
			return ErrCouponCodeExists
		}
	}
	return s.couponRepo.Update(coupon)
}

// Delete soft-deletes a coupon.
func (s *CouponAdminService) Delete(businessID, couponID uint) error {
	coupon, err := s.couponRepo.GetByID(couponID)
	if err != nil {
		return err
	}
	if coupon == nil || coupon.BusinessID != businessID {
		return ErrCouponNotFound
	}
	return s.couponRepo.Delete(couponID)
}

// Get fetches one coupon scoped to a business.
func (s *CouponAdminService) Get(businessID, couponID uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(couponID)
	if err != nil {
		return nil, err
	}
	if coupon == nil || coupon.BusinessID != businessID {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// List fetches coupons for the admin panel.
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// ListUsages fetches the redemption ledger of one coupon.
func (s *CouponAdminService) ListUsages(businessID uint, filter repository.CouponUsageListFilter) ([]models.CouponUsage, int64, error) {
	if filter.CouponID > 0 {
		coupon, err := s.couponRepo.GetByID(filter.CouponID)
		if err != nil {
			return nil, 0, err
		}
		if coupon == nil || coupon.BusinessID != businessID {
			return nil, 0, ErrCouponNotFound
		}
	}
	return s.usageRepo.List(filter)
}

func normalizeCoupon(coupon *models.Coupon) error {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if coupon.Code == "" || coupon.BusinessID == 0 {
		return ErrCouponInvalid
	}
	coupon.Type = strings.ToLower(strings.TrimSpace(coupon.Type))
	if !validCouponTypes[coupon.Type] {
		return ErrCouponInvalid
	}
	scope := strings.ToLower(strings.TrimSpace(coupon.ScopeType))
	if scope == "" {
		scope = constants.ScopeTypeAll
	}
	if !validScopeTypes[scope] {
		return ErrCouponInvalid
	}
	coupon.ScopeType = scope
	if scope != constants.ScopeTypeAll {
		var ids []uint
		if err := json.Unmarshal([]byte(strings.TrimSpace(coupon.ScopeRefIDs)), &ids); err != nil || len(ids) == 0 {
			return ErrCouponInvalid
		}
	}
	switch coupon.Type {
	case constants.CouponTypeFixed, constants.CouponTypePercentage:
		if coupon.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return ErrCouponInvalid
		}
	}
	if coupon.Type == constants.CouponTypePercentage &&
		coupon.Value.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return ErrCouponInvalid
	}
	if coupon.UsageLimit < 0 || coupon.PerUserLimit < 0 {
		return ErrCouponInvalid
	}
	if coupon.ValidFrom != nil && coupon.ValidUntil != nil && coupon.ValidUntil.Before(*coupon.ValidFrom) {
		return ErrCouponInvalid
	}
	return nil
}
