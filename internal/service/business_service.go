package service

import (
	"context"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/cache"
	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"
)

// BusinessService serves the public profile and the per-business settings.
type BusinessService struct {
	businessRepo repository.BusinessRepository
	settingRepo  repository.BusinessSettingRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	couponRepo   repository.CouponRepository
}

// NewBusinessService creates a business service.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	settingRepo repository.BusinessSettingRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
) *BusinessService {
	return &BusinessService{
		businessRepo: businessRepo,
		settingRepo:  settingRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		couponRepo:   couponRepo,
	}
}

// GetBySlug resolves an active business by its public slug.
func (s *BusinessService) GetBySlug(slug string) (*models.Business, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrBusinessNotFound
	}
	business, err := s.businessRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if business == nil || !business.IsActive {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

// GetSetting reads the settings of one business through the cache.
func (s *BusinessService) GetSetting(ctx context.Context, businessID uint) (*models.BusinessSetting, error) {
	if cached, hit, err := cache.GetBusinessSetting(ctx, businessID); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("business_setting_cache_read_failed", "business_id", businessID, "error", err)
	}

	setting, err := s.settingRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrBusinessNotFound
	}
	if err := cache.SetBusinessSetting(ctx, setting); err != nil {
		logger.Warnw("business_setting_cache_write_failed", "business_id", businessID, "error", err)
	}
	return setting, nil
}

// MenuCategory is one category with its available products.
type MenuCategory struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// GetMenu builds the public menu: active categories in display order, each
// carrying only available products.
func (s *BusinessService) GetMenu(businessID uint) ([]MenuCategory, error) {
	categories, _, err := s.categoryRepo.List(repository.CategoryListFilter{
		BusinessID: businessID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	products, _, err := s.productRepo.List(repository.ProductListFilter{
		BusinessID:    businessID,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]models.Product, len(categories))
	for _, product := range products {
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], product)
	}

	menu := make([]MenuCategory, 0, len(categories))
	for _, category := range categories {
		menu = append(menu, MenuCategory{
			Category: category,
			Products: byCategory[category.ID],
		})
	}
	return menu, nil
}

// ListPublicCoupons lists the coupons a business chose to advertise.
func (s *BusinessService) ListPublicCoupons(businessID uint) ([]models.Coupon, error) {
	active := true
	public := true
	coupons, _, err := s.couponRepo.List(repository.CouponListFilter{
		BusinessID: businessID,
		IsActive:   &active,
		IsPublic:   &public,
	})
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

// UpdateSetting saves the settings of one business and drops the cache.
func (s *BusinessService) UpdateSetting(ctx context.Context, setting *models.BusinessSetting) error {
	if err := s.settingRepo.Update(setting); err != nil {
		return err
	}
	if err := cache.DelBusinessSetting(ctx, setting.BusinessID); err != nil {
		logger.Warnw("business_setting_cache_del_failed", "business_id", setting.BusinessID, "error", err)
	}
	return nil
}

// UpdateProfile saves the public profile fields of one business.
func (s *BusinessService) UpdateProfile(business *models.Business) error {
	existing, err := s.businessRepo.GetBySlug(business.Slug)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != business.ID {
		return ErrSlugExists
	}
	return s.businessRepo.Update(business)
}
