package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService evaluates coupon codes against a priced cart.
type CouponService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
	orderRepo  repository.OrderRepository
}

// NewCouponService creates a coupon service.
func NewCouponService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository, orderRepo repository.OrderRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
		orderRepo:  orderRepo,
	}
}

// CouponQuote is the outcome of a successful coupon evaluation.
type CouponQuote struct {
	Coupon   *models.Coupon
	Discount models.Money
}

// ApplyCoupon runs the full redemption check chain and computes the discount.
// The check order is fixed: existence, active flag, validity window, minimum
// order amount, global cap, per-phone cap, first-order restriction, scope.
// Every rejection is a sentinel error.
func (s *CouponService) ApplyCoupon(businessID uint, code, customerPhone string, subtotal, deliveryFee models.Money, items []models.OrderItem) (*CouponQuote, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetByCode(businessID, trimmed)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}

	now := time.Now()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, ErrCouponNotStarted
	}
	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return nil, ErrCouponExpired
	}

	if subtotal.Decimal.Cmp(coupon.MinOrderAmount.Decimal) < 0 {
		return nil, ErrCouponMinAmount
	}

	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, ErrCouponUsageLimit
	}

	phone := strings.TrimSpace(customerPhone)
	if coupon.PerUserLimit > 0 && phone != "" {
		count, err := s.usageRepo.CountByPhone(coupon.ID, phone)
		if err != nil {
			return nil, err
		}
		if int(count) >= coupon.PerUserLimit {
			return nil, ErrCouponPerUserLimit
		}
	}

	if coupon.FirstOrderOnly && phone != "" {
		count, err := s.orderRepo.CountByPhone(businessID, phone)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCouponFirstOrderOnly
		}
	}

	eligible, err := resolveEligibleItems(coupon, items)
	if err != nil {
		return nil, err
	}

	discount, err := calculateDiscount(coupon, eligible, deliveryFee)
	if err != nil {
		return nil, err
	}

	return &CouponQuote{
		Coupon:   coupon,
		Discount: models.NewMoneyFromDecimal(discount),
	}, nil
}

// eligibleLines is the scope-filtered slice of the cart a discount applies to.
type eligibleLines struct {
	Items    []models.OrderItem
	Subtotal decimal.Decimal
}

func resolveEligibleItems(coupon *models.Coupon, items []models.OrderItem) (eligibleLines, error) {
	scope := strings.ToLower(strings.TrimSpace(coupon.ScopeType))
	if scope == "" || scope == constants.ScopeTypeAll {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.TotalPrice.Decimal)
		}
		return eligibleLines{Items: items, Subtotal: total}, nil
	}

	ids, err := decodeScopeIDs(coupon.ScopeRefIDs)
	if err != nil || len(ids) == 0 {
		return eligibleLines{}, ErrCouponScopeInvalid
	}

	var matched []models.OrderItem
	total := decimal.Zero
	for _, item := range items {
		var key uint
		switch scope {
		case constants.ScopeTypeCategory:
			key = item.CategoryID
		case constants.ScopeTypeProduct:
			key = item.ProductID
		default:
			return eligibleLines{}, ErrCouponScopeInvalid
		}
		if _, ok := ids[key]; ok {
			matched = append(matched, item)
			total = total.Add(item.TotalPrice.Decimal)
		}
	}

	if total.IsZero() {
		return eligibleLines{}, ErrCouponScopeInvalid
	}
	return eligibleLines{Items: matched, Subtotal: total}, nil
}

func calculateDiscount(coupon *models.Coupon, eligible eligibleLines, deliveryFee models.Money) (decimal.Decimal, error) {
	switch strings.ToLower(strings.TrimSpace(coupon.Type)) {
	case constants.CouponTypeFixed:
		// The fixed discount is applied as-is even when it exceeds the
		// subtotal. Clamping is a pending product decision.
		if coupon.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, ErrCouponInvalid
		}
		return coupon.Value.Decimal, nil
	case constants.CouponTypePercentage:
		if coupon.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, ErrCouponInvalid
		}
		percent := coupon.Value.Decimal.Div(decimal.NewFromInt(100))
		discount := eligible.Subtotal.Mul(percent)
		return applyMaxDiscount(coupon, discount), nil
	case constants.CouponTypeFreeDelivery:
		return deliveryFee.Decimal, nil
	case constants.CouponTypeBogo:
		// One free unit per full pair on each eligible line.
		discount := decimal.Zero
		for _, item := range eligible.Items {
			if item.Quantity < 2 {
				continue
			}
			freeUnits := int64(item.Quantity / 2)
			discount = discount.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(freeUnits)))
		}
		return applyMaxDiscount(coupon, discount), nil
	default:
		return decimal.Zero, ErrCouponInvalid
	}
}

func applyMaxDiscount(coupon *models.Coupon, discount decimal.Decimal) decimal.Decimal {
	if coupon.MaxDiscount.Decimal.GreaterThan(decimal.Zero) && discount.GreaterThan(coupon.MaxDiscount.Decimal) {
		return coupon.MaxDiscount.Decimal
	}
	return discount
}

func decodeScopeIDs(raw string) (map[uint]struct{}, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[uint]struct{}{}, nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
		return nil, err
	}
	result := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		result[id] = struct{}{}
	}
	return result, nil
}
