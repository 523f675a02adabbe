package public

import (
	"errors"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds one service sentinel to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var businessResolveErrorRules = []mappedHandlerError{
	{target: service.ErrBusinessNotFound, code: response.CodeNotFound, key: "error.business_not_found"},
	{target: service.ErrBusinessInactive, code: response.CodeNotFound, key: "error.business_inactive"},
	{target: service.ErrOrdersPaused, code: response.CodeBadRequest, key: "error.orders_paused"},
}

var couponCheckErrorRules = []mappedHandlerError{
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, key: "error.coupon_invalid"},
	{target: service.ErrCouponNotFound, code: response.CodeBadRequest, key: "error.coupon_not_found"},
	{target: service.ErrCouponInactive, code: response.CodeBadRequest, key: "error.coupon_inactive"},
	{target: service.ErrCouponNotStarted, code: response.CodeBadRequest, key: "error.coupon_not_started"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "error.coupon_expired"},
	{target: service.ErrCouponMinAmount, code: response.CodeBadRequest, key: "error.coupon_min_amount"},
	{target: service.ErrCouponUsageLimit, code: response.CodeBadRequest, key: "error.coupon_usage_limit"},
	{target: service.ErrCouponPerUserLimit, code: response.CodeBadRequest, key: "error.coupon_per_user_limit"},
	{target: service.ErrCouponFirstOrderOnly, code: response.CodeBadRequest, key: "error.coupon_first_order"},
	{target: service.ErrCouponScopeInvalid, code: response.CodeBadRequest, key: "error.coupon_scope_invalid"},
}

var checkoutCartErrorRules = []mappedHandlerError{
	{target: service.ErrOrderEmpty, code: response.CodeBadRequest, key: "error.order_empty"},
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest, key: "error.order_invalid_item"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "error.order_invalid_item"},
	{target: service.ErrOrderMinAmount, code: response.CodeBadRequest, key: "error.order_min_amount"},
	{target: service.ErrDeliveryNotAvailable, code: response.CodeBadRequest, key: "error.delivery_not_available"},
	{target: service.ErrPaymentNotAvailable, code: response.CodeBadRequest, key: "error.payment_not_available"},
	{target: service.ErrTableNotFound, code: response.CodeBadRequest, key: "error.table_not_found"},
	{target: service.ErrOrderTotalMismatch, code: response.CodeBadRequest, key: "error.order_total_mismatch"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err,
		concatMappedHandlerErrors(businessResolveErrorRules, checkoutCartErrorRules, couponCheckErrorRules),
		response.CodeInternal, "error.internal")
}

func respondCouponQuoteError(c *gin.Context, err error) {
	respondWithMappedError(c, err,
		concatMappedHandlerErrors(businessResolveErrorRules, checkoutCartErrorRules, couponCheckErrorRules),
		response.CodeInternal, "error.internal")
}
