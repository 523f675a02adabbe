package service

import "errors"

// Sentinel errors shared across services. Handlers map these to localized
// responses via the error mapping tables.
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessInactive = errors.New("business inactive")
	ErrOrdersPaused     = errors.New("business not accepting orders")

	ErrLoginFailed     = errors.New("wrong email or password")
	ErrAccountDisabled = errors.New("account disabled")
	ErrCaptchaInvalid  = errors.New("captcha verification failed")
	ErrCaptchaRequired = errors.New("captcha required")
	ErrEmailExists     = errors.New("email already registered")
	ErrStaffNotFound   = errors.New("staff not found")

	ErrCouponInvalid        = errors.New("coupon invalid")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponInactive       = errors.New("coupon inactive")
	ErrCouponNotStarted     = errors.New("coupon not started")
	ErrCouponExpired        = errors.New("coupon expired")
	ErrCouponMinAmount      = errors.New("coupon minimum order amount not met")
	ErrCouponUsageLimit     = errors.New("coupon usage limit reached")
	ErrCouponPerUserLimit   = errors.New("coupon per-user limit reached")
	ErrCouponFirstOrderOnly = errors.New("coupon valid for first orders only")
	ErrCouponScopeInvalid   = errors.New("coupon scope not satisfied")
	ErrCouponCodeExists     = errors.New("coupon code already exists")

	ErrInvalidOrderItem     = errors.New("invalid order item")
	ErrOrderEmpty           = errors.New("order has no items")
	ErrOrderMinAmount       = errors.New("order below minimum amount")
	ErrOrderTotalMismatch   = errors.New("order total mismatch")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderFetchFailed     = errors.New("order fetch failed")
	ErrOrderUpdateFailed    = errors.New("order update failed")
	ErrOrderStatusInvalid   = errors.New("order status transition not allowed")
	ErrOrderCancelDenied    = errors.New("order can no longer be cancelled")
	ErrDeliveryNotAvailable = errors.New("delivery type not available")
	ErrPaymentNotAvailable  = errors.New("payment method not available")
	ErrTableNotFound        = errors.New("table not found")

	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSlugExists       = errors.New("slug already taken")
)
