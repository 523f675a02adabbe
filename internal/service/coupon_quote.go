package service

import (
	"github.com/tikprofil/tikprofil-api/internal/models"
)

// CouponQuoteInput is the public pre-validation request: the cart as it
// stands, before the customer commits to checkout.
type CouponQuoteInput struct {
	BusinessSlug  string
	CouponCode    string
	CustomerPhone string
	DeliveryType  string
	Items         []CheckoutItem
}

// QuoteCoupon prices the cart and evaluates the coupon exactly like checkout
// does, but writes nothing. The returned quote mirrors what checkout would
// apply.
func (s *OrderService) QuoteCoupon(input CouponQuoteInput) (*CouponQuote, error) {
	business, setting, err := s.resolveAcceptingBusiness(input.BusinessSlug)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrOrderEmpty
	}

	items, subtotal, err := s.priceItems(business.ID, input.Items)
	if err != nil {
		return nil, err
	}
	if subtotal.Cmp(setting.MinOrderAmount.Decimal) < 0 {
		return nil, ErrOrderMinAmount
	}

	deliveryFee := s.resolveDeliveryFee(setting, input.DeliveryType, subtotal)

	return s.couponService.ApplyCoupon(
		business.ID,
		input.CouponCode,
		input.CustomerPhone,
		models.NewMoneyFromDecimal(subtotal),
		models.NewMoneyFromDecimal(deliveryFee),
		items,
	)
}
